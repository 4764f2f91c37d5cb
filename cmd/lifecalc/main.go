package main

// Score factor records from the command line:
//   go run ./cmd/lifecalc calculate -f factors.yaml
//   go run ./cmd/lifecalc bmi --height 180 --weight 80
//   go run ./cmd/lifecalc countdown --dob 1990-01-01 --lifespan 80

import (
	"os"
)

func main() {
	cmd := newRootCmd(newOptions())
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
