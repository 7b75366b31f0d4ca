package domain

import (
	"fmt"
	"slices"
)

// frameNumbers are the border cells of the 5x5 board laid out 1-25 row-major.
var frameNumbers = []int{1, 2, 3, 4, 5, 6, 10, 11, 15, 16, 20, 21, 22, 23, 24, 25}

var frameLookup = func() [PoolSize + 1]bool {
	var lookup [PoolSize + 1]bool
	for _, n := range frameNumbers {
		lookup[n] = true
	}
	return lookup
}()

// NumberMarks describes how a single board number is classified.
type NumberMarks struct {
	Even      bool
	Fibonacci bool
	Frame     bool
}

// Classify returns the marks for a board number.
func Classify(n int) NumberMarks {
	return NumberMarks{
		Even:      n%2 == 0,
		Fibonacci: IsFibonacci(n),
		Frame:     IsFrame(n),
	}
}

// IsFibonacci reports whether n is a non-negative Fibonacci number.
func IsFibonacci(n int) bool {
	a, b := 0, 1
	for a < n {
		a, b = b, a+b
	}
	return a == n
}

// IsFrame reports whether n sits on the border of the board.
func IsFrame(n int) bool {
	if n < 1 || n > PoolSize {
		return false
	}
	return frameLookup[n]
}

// FrameNumbers returns the border numbers in ascending order.
func FrameNumbers() []int {
	return slices.Clone(frameNumbers)
}

// FibonacciNumbers returns the Fibonacci numbers present on the board.
func FibonacciNumbers() []int {
	numbers := make([]int, 0, 8)
	for n := 1; n <= PoolSize; n++ {
		if IsFibonacci(n) {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// CountFibonacci returns how many numbers in ticket are Fibonacci numbers.
func CountFibonacci(ticket Ticket) int {
	count := 0
	for _, n := range ticket {
		if IsFibonacci(n) {
			count++
		}
	}
	return count
}

// CountFrame returns how many numbers in ticket sit on the board border.
func CountFrame(ticket Ticket) int {
	count := 0
	for _, n := range ticket {
		if IsFrame(n) {
			count++
		}
	}
	return count
}

// CountEvenOdd splits ticket by parity.
func CountEvenOdd(ticket Ticket) (even, odd int) {
	for _, n := range ticket {
		if n%2 == 0 {
			even++
		}
	}
	return even, len(ticket) - even
}

// HasLongSequence reports whether the ascending ticket holds maxLength or
// more adjacent numbers that each exceed the previous one by exactly one.
func HasLongSequence(ticket Ticket, maxLength int) bool {
	if len(ticket) == 0 {
		return false
	}
	run := 1
	if run >= maxLength {
		return true
	}
	for i := 1; i < len(ticket); i++ {
		if ticket[i] == ticket[i-1]+1 {
			run++
			if run >= maxLength {
				return true
			}
			continue
		}
		run = 1
	}
	return false
}

// Sum returns the total of all numbers in ticket.
func Sum(ticket Ticket) int {
	total := 0
	for _, n := range ticket {
		total += n
	}
	return total
}

// ComputeStatistics derives the statistics recorded for an accepted ticket.
func ComputeStatistics(ticket Ticket) TicketStatistics {
	even, odd := CountEvenOdd(ticket)
	return TicketStatistics{
		Even:      even,
		Odd:       odd,
		Fibonacci: CountFibonacci(ticket),
		Frame:     CountFrame(ticket),
		Sum:       Sum(ticket),
	}
}

// ParseTicket validates caller-supplied numbers and returns them as an
// ascending ticket. The input slice is not modified.
func ParseTicket(numbers []int) (Ticket, error) {
	if err := ValidateTicketSize(len(numbers)); err != nil {
		return nil, err
	}
	var seen [PoolSize + 1]bool
	for _, n := range numbers {
		if n < 1 || n > PoolSize {
			return nil, fmt.Errorf("%w: %d is out of range", ErrInvalidTicketNumbers, n)
		}
		if seen[n] {
			return nil, fmt.Errorf("%w: %d is repeated", ErrInvalidTicketNumbers, n)
		}
		seen[n] = true
	}
	ticket := Ticket(slices.Clone(numbers))
	slices.Sort(ticket)
	return ticket, nil
}
