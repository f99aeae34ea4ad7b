package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

// Formatter 单行日志：时间 [级别] 文件:行 函数 内容 字段
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	fileName, line, funcName := "", 0, ""
	if entry.HasCaller() {
		fileName = filepath.Base(entry.Caller.File)
		line = entry.Caller.Line
		funcName = entry.Caller.Function[strings.LastIndex(entry.Caller.Function, ".")+1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s:%d %s %s", timestamp, level, fileName, line, funcName, entry.Message)
	for k, v := range entry.Data {
		fmt.Fprintf(&b, " %s=%v", k, v)
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// Logger 按天轮转写入 dir，dir 为空时写标准错误
func Logger(level logrus.Level, dir string) interfaces.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if dir != "" {
		if writer, err := getWriter(dir); err != nil {
			logrus.Fatalf("Failed to create log writer: %v", err)
		} else {
			l.SetOutput(writer)
		}
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

// NewWriterLogger 写入任意 io.Writer，测试和命令行输出用
func NewWriterLogger(level logrus.Level, w io.Writer) interfaces.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

func getWriter(dir string) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	writer, err := newRotateLogs(logFile)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{
		RotateLogs: writer,
		logPattern: logFile,
	}, nil
}

func newRotateLogs(pattern string) (*rotatelogs.RotateLogs, error) {
	return rotatelogs.New(
		pattern,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
}

// SafeRotateLogs 日志文件被删除后重新创建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	if _, err := os.Stat(s.RotateLogs.CurrentFileName()); os.IsNotExist(err) {
		writer, err := newRotateLogs(s.logPattern)
		if err != nil {
			return 0, fmt.Errorf("failed to recreate log writer: %v", err)
		}
		s.RotateLogs = writer
	}
	return s.RotateLogs.Write(p)
}
