/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package log

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level orders severities from quiet to chatty. A logger at a given
// level emits that level and everything quieter.
type Level int

const (
	ErrorLevel Level = iota
	WarningLevel
	InfoLevel
	DebugLevel
)

const (
	LogPrefix  = "[djilog] "
	HelpLevels = "Must be one of: error, warning, info, debug."
)

func (l Level) String() string {
	switch l {
	case ErrorLevel:
		return "error"
	case WarningLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel maps the configuration string to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "error":
		return ErrorLevel, nil
	case "warning":
		return WarningLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q, must be one of: error, warning, info, debug", s)
}

type Logger struct {
	level Level
	*log.Logger
}

var logger = &Logger{
	level:  InfoLevel,
	Logger: log.New(os.Stderr, LogPrefix, log.LstdFlags),
}

func SetLevel(strLevel string) error {
	level, err := ParseLevel(strLevel)
	if err != nil {
		return err
	}
	logger.level = level
	return nil
}

func Init(out io.Writer, strLevel string) {
	logger.SetOutput(out)
	if err := SetLevel(strLevel); err != nil {
		panic(err)
	}
}

func (l *Logger) emit(level Level, format string, v ...interface{}) {
	if l.level >= level {
		l.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
	}
}

func Error(format string, v ...interface{}) {
	logger.emit(ErrorLevel, format, v...)
}

func Warning(format string, v ...interface{}) {
	logger.emit(WarningLevel, format, v...)
}

func Info(format string, v ...interface{}) {
	logger.emit(InfoLevel, format, v...)
}

func Debug(format string, v ...interface{}) {
	logger.emit(DebugLevel, format, v...)
}

// Diagnostics reports the non-fatal conditions collected while
// iterating a record or frame stream, one warning line per entry.
// The source labels the iterator that produced them.
func Diagnostics[D fmt.Stringer](source string, diags []D) {
	if len(diags) == 0 {
		return
	}
	Warning("%s: %d stream diagnostics", source, len(diags))
	for _, d := range diags {
		Warning("%s: %s", source, d.String())
	}
}
