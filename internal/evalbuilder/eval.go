package evalbuilder

import (
	"fmt"

	material "github.com/sahomat/sahomat/pkg/eval/material"
	positional "github.com/sahomat/sahomat/pkg/eval/positional"
)

func Get(key string) func() interface{} {
	return func() interface{} {
		switch key {
		case "", "positional":
			return positional.NewEvaluationService()
		case "material":
			return material.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}
