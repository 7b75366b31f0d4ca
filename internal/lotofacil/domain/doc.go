// Package domain provides the constrained random-generation engine for
// Lotofácil tickets.
//
// A Lotofácil ticket marks between 15 and 20 distinct numbers from the
// 1-25 board. The generator does not draw uniformly: every candidate is
// checked against a balance policy derived from past draw statistics and
// rejected candidates are redrawn.
//
// # Classifiers
//
// Classifiers are pure functions over a ticket:
//   - Parity: count of even and odd numbers.
//   - Fibonacci: count of numbers in the Fibonacci sequence (1, 2, 3, 5, 8, 13, 21).
//   - Frame: count of numbers on the border of the 5x5 board.
//   - Runs: whether the ticket holds a run of consecutive numbers.
//
// # Acceptance Policy
//
// A candidate is accepted when all of the following hold:
//   - Even count in [6, 9] and odd count in [6, 9].
//   - Fibonacci count in [3, 7].
//   - Frame count in [8, 12].
//   - No run of 5 or more consecutive numbers.
//
// The bounds are the same for every ticket size, so larger tickets are
// accepted less often.
//
// # Batches
//
// A batch always holds 5 tickets. Each slot is sampled up to 1000 times; when
// no candidate passes, the last candidate fills the slot unchanged. Batch
// generation therefore always terminates and never fails once the ticket
// size is valid.
package domain
