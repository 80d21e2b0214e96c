package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/remiges-tech/logharbour/logharbour"
)

// Logger is an interface that represents a logger.
type Logger interface {
	Log(message string) error
}

// StdLogger logs messages to the given writer.
type StdLogger struct {
	out io.Writer
}

func NewLogger(out io.Writer) *StdLogger {
	return &StdLogger{out: out}
}

func (sl *StdLogger) Log(message string) error {
	_, err := fmt.Fprintln(sl.out, message)
	return err
}

// FileLogger logs messages to a file.
type FileLogger struct {
	FilePath string
}

func NewFileLogger(filePath string) *FileLogger {
	return &FileLogger{FilePath: filePath}
}

func (fl *FileLogger) Log(message string) error {
	if fl.FilePath == "" {
		return fmt.Errorf("FilePath cannot be empty")
	}

	file, err := os.OpenFile(fl.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	logger := log.New(file, "", log.LstdFlags)
	logger.Println(message)

	return nil
}

type LogHarbour struct {
	*logharbour.Logger
}

func (lh *LogHarbour) Log(message string) error {
	lh.LogActivity(message, nil)
	return nil
}
