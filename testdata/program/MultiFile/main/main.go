package main

import "fmt"

//go:generate caseiter -type=Day

func main() {
	// Cases declared across several files keep the compiled file order:
	// the weekdays come from weekday.go, the weekend from weekend.go.
	var week []Day
	for it := AllDayCases(); ; {
		v := it.Next()
		if v == nil {
			break
		}
		week = append(week, *v)
	}
	fmt.Println(week)
	fmt.Println(*Friday.Next() == Saturday)
}
