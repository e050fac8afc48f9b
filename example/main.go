// Command caseiterexample demonstrates caseiter on a playing-card suit enum.
// The suit_caseiter.go next door is checked in exactly as go generate writes
// it; rerun "go generate ." after changing the Suit constants.
package main

import "fmt"

//go:generate go tool caseiter -type=Suit -seq

// Suit is a card suit in ascending bridge order.
type Suit string

const (
	Clubs    Suit = "♣"
	Diamonds Suit = "♦"
	Hearts   Suit = "♥"
	Spades   Suit = "♠"
)

func main() {
	// Output: [♣ ♦ ♥ ♠]
	var deck []Suit
	for s := range AllSuitCases().Seq() {
		deck = append(deck, s)
	}
	fmt.Println(deck)

	// Output: the suit above ♥ is ♠
	trump := Hearts
	if higher := trump.Next(); higher != nil {
		fmt.Println("the suit above", trump, "is", *higher)
	}
}
