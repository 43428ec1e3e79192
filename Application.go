package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"ArcadePong/core"
	"ArcadePong/logger"
)

func main() {
	if err := logger.Log.Init("./"); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	env := os.Getenv("PONG_ENV")
	if env == "" {
		env = "dev"
	}
	cfg, err := core.ReadProperties("./", env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := start(cfg, rng); err != nil {
		logger.Log.Error(err.Error())
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
