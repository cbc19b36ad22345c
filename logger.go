package makespan

import (
	"os"

	"github.com/sirupsen/logrus"
)

var stdLogger = logrus.StandardLogger()

func init() {
	level, err := logrus.ParseLevel(getenv("LOG_LEVEL"))
	if err == nil {
		stdLogger.SetLevel(level)
	}
}

type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	Debug(args ...interface{})
	Info(args ...interface{})
	Print(args ...interface{})
	Warn(args ...interface{})

	Debugln(args ...interface{})
	Infoln(args ...interface{})
	Println(args ...interface{})
	Warnln(args ...interface{})
}

func SetLogger(l *logrus.Logger) {
	stdLogger = l
}

func getenv(key string) string {
	return os.Getenv(key)
}

type evaluationLogger struct {
	Schedule   ScheduleID
	Evaluation Evaluation
	hasResult  bool
}

func (l evaluationLogger) WithSchedule(id ScheduleID) evaluationLogger {
	l.Schedule = id
	return l
}

func (l evaluationLogger) WithEvaluation(ev Evaluation) evaluationLogger {
	l.Evaluation = ev
	l.hasResult = true
	return l
}

func (l evaluationLogger) Logger() Logger {
	fields := logrus.Fields{"channel": "evaluator", "schedule": l.Schedule.String()}
	if l.hasResult {
		fields["evaluation"] = l.Evaluation.ID.String()
		fields["makespan"] = l.Evaluation.Makespan
		fields["machines"] = len(l.Evaluation.MachineFinish)
	}
	return stdLogger.WithFields(fields)
}
