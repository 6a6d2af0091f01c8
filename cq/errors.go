package cq

import "gopkg.in/src-d/go-errors.v1"

// ErrParse is returned whenever input text does not match the conjunctive
// query grammar: head "(" varlist? ")" " :- " atom ("," " " atom)*.
var ErrParse = errors.NewKind("conjunctive query parse error: %s")
