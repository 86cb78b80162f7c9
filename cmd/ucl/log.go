package main

import (
	"os"

	"github.com/charmbracelet/log"
)

var theLog = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "ucl",
})
