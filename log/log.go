package log

import (
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup routes the standard logger to a rotating file.
// Keeps logging to console if debug = true.
func Setup(logFilePath string, debugMode bool) {
	if debugMode {
		return
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:   logFilePath,
		MaxBackups: 3,
		MaxAge:     28, //days
	})
}

func Println(v ...interface{}) {
	log.Println(v...)
}

func Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

func Fatal(v ...interface{}) {
	log.Fatal(v...)
}
