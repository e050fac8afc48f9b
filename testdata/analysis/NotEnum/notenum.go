package testdata

//go:generate caseiter -type=Missing // want `Missing is not an enum: not declared in`

//go:generate caseiter -type=maxRetries
var maxRetries = 3 // want `maxRetries is not an enum: maxRetries is not a type`

//go:generate caseiter -type=Refresh
type Refresh = state // want `Refresh is not an enum: declared as an alias of state`

type state int

const idle state = 0

//go:generate caseiter -type=Point
type Point struct{ X, Y int } // want `Point is not an enum: underlying type struct\{X int; Y int\} is not basic`

//go:generate caseiter -type=List
type List[T any] int // want `List is not an enum: generic types cannot be enumerated`
