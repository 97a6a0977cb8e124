// Package chainscript implements the ChainScript execution engine, a small
// tree-walking interpreter for a contract-flavoured scripting syntax:
//   - Variable declarations via `let name = expr;` and reassignment via
//     `name = expr;` (assignment requires a prior declaration).
//   - Integer literals and identifiers as expression terms.
//   - Exactly one binary operator per expression: `+`, `==`, or `<`.
//   - Conditionals `if expr { ... } else { ... }` and loops
//     `while expr { ... }`, with non-zero meaning true.
//   - Single-argument builtin calls in statement position, e.g. `print(x);`.
//     Hosts can register additional builtins on the Engine.
//
// Comments beginning with `//` are ignored. All values are int64; arithmetic
// wraps with native two's-complement semantics. The interpreter can enforce
// an optional step quota, rejecting scripts that exceed configured limits.
package chainscript
