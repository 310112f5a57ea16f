package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	Info    = color.New(color.FgCyan).PrintfFunc()
	Success = color.New(color.FgGreen).PrintfFunc()
	Warning = color.New(color.FgHiBlack).PrintfFunc()
	Error   = color.New(color.FgRed).PrintfFunc()
	Debug   = color.New(color.FgHiBlack).PrintfFunc()

	Bold = color.New(color.Bold).SprintFunc()

	logFile *os.File
)

// InitLogger opens (or creates) the file log. Console output works without
// it; the file just adds timestamps.
func InitLogger(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f
	return nil
}

func CloseLogger() {
	if logFile != nil {
		logFile.Close()
	}
}

func logToFile(level string, msg string) {
	if logFile != nil {
		ts := time.Now().Format("2006/01/02 15:04:05")
		fmt.Fprintf(logFile, "%s [%s] %s\n", ts, level, strings.TrimSpace(msg))
	}
}

func LogInfo(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("INFO", msg)
	Info("[INFO] " + msg + "\n")
}

func LogSuccess(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("SUCCESS", msg)
	Success("[+] " + msg + "\n")
}

func LogWarning(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("WARNING", msg)
	Warning("[!] " + msg + "\n")
}

func LogError(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("ERROR", msg)
	Error("[-] " + msg + "\n")
}

// LogParsed reports a successfully ingested document, indented and yellow
// so results stand out from progress chatter.
func LogParsed(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	logToFile("PARSED", msg)
	color.New(color.FgYellow).Printf("    [+] %s\n", msg)
}

func LogDebug(format string, a ...interface{}) {
	if os.Getenv("DEBUG") == "true" {
		msg := fmt.Sprintf(format, a...)
		logToFile("DEBUG", msg)
		Debug("[DEBUG] " + msg + "\n")
	}
}
