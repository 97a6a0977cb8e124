package main

import "github.com/pkg/profile"

type stopper interface {
	Stop()
}

type noopProfile struct{}

func (noopProfile) Stop() {}

func startProfile(mode string) stopper {
	switch mode {
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
	case "trace":
		return profile.Start(profile.TraceProfile, profile.ProfilePath("."), profile.Quiet)
	default:
		return noopProfile{}
	}
}
