package ryu

import "github.com/calebcase/ryu/internal/pow5"

var _ pow5.Table = powerTable{}

// TableName reports which power table the package was built with: "full" or
// "small".
func TableName() string {
	switch pow5.Table(powerTable{}).(type) {
	case pow5.Small:
		return "small"
	default:
		return "full"
	}
}
