package utils

import (
	"fmt"
	"log"

	"github.com/ttacon/chalk"
)

func Check(err error, msg string) {
	if err != nil {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panicln(err)
	}
}

func CheckWithFunc(err error, msgfn func() string) {
	if err != nil {
		fmt.Print(chalk.Red)
		log.Print(msgfn(), chalk.Reset)
		log.Panicln(err)
	}
}

func Assert(cond bool, msg string) {
	if !cond {
		fmt.Print(chalk.Red)
		log.Print(msg, chalk.Reset)
		log.Panicln("Assertion failed")
	}
}
