package middleware

import (
	"io"

	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// componentEcho Echo 내부에서 남기는 로그의 컴포넌트 이름
const componentEcho = "api.echo"

var (
	gommonToLogrus = map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}

	logrusToGommon = map[applog.Level]log.Lvl{
		applog.TraceLevel: log.DEBUG,
		applog.DebugLevel: log.DEBUG,
		applog.InfoLevel:  log.INFO,
		applog.WarnLevel:  log.WARN,
		applog.ErrorLevel: log.ERROR,
	}
)

// Logger Echo(gommon) 로거 인터페이스를 애플리케이션 로거(logrus)에 연결하는 어댑터입니다.
// Echo가 남기는 모든 로그에는 component=api.echo 필드가 붙습니다.
type Logger struct {
	*applog.Logger
}

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", componentEcho)
}

func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix 접두사는 사용하지 않습니다.
func (l Logger) Prefix() string {
	return ""
}

func (l Logger) SetPrefix(string) {}

// Level Fatal, Panic 처럼 gommon에 대응하는 값이 없는 레벨은 OFF로 보고합니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := logrusToGommon[l.Logger.GetLevel()]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel OFF 등 대응하지 않는 레벨은 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if level, ok := gommonToLogrus[lvl]; ok {
		l.Logger.SetLevel(level)
	}
}

// SetHeader 로그 포맷은 logrus Formatter가 결정하므로 무시합니다.
func (l Logger) SetHeader(string) {}

func (l Logger) Print(i ...any)                 { l.entry().Print(i...) }
func (l Logger) Printf(format string, a ...any) { l.entry().Printf(format, a...) }
func (l Logger) Printj(j log.JSON)              { l.entry().WithFields(applog.Fields(j)).Print() }

func (l Logger) Debug(i ...any)                 { l.entry().Debug(i...) }
func (l Logger) Debugf(format string, a ...any) { l.entry().Debugf(format, a...) }
func (l Logger) Debugj(j log.JSON)              { l.entry().WithFields(applog.Fields(j)).Debug() }

func (l Logger) Info(i ...any)                 { l.entry().Info(i...) }
func (l Logger) Infof(format string, a ...any) { l.entry().Infof(format, a...) }
func (l Logger) Infoj(j log.JSON)              { l.entry().WithFields(applog.Fields(j)).Info() }

func (l Logger) Warn(i ...any)                 { l.entry().Warn(i...) }
func (l Logger) Warnf(format string, a ...any) { l.entry().Warnf(format, a...) }
func (l Logger) Warnj(j log.JSON)              { l.entry().WithFields(applog.Fields(j)).Warn() }

func (l Logger) Error(i ...any)                 { l.entry().Error(i...) }
func (l Logger) Errorf(format string, a ...any) { l.entry().Errorf(format, a...) }
func (l Logger) Errorj(j log.JSON)              { l.entry().WithFields(applog.Fields(j)).Error() }

func (l Logger) Fatal(i ...any)                 { l.entry().Fatal(i...) }
func (l Logger) Fatalf(format string, a ...any) { l.entry().Fatalf(format, a...) }
func (l Logger) Fatalj(j log.JSON)              { l.entry().WithFields(applog.Fields(j)).Fatal() }

func (l Logger) Panic(i ...any)                 { l.entry().Panic(i...) }
func (l Logger) Panicf(format string, a ...any) { l.entry().Panicf(format, a...) }
func (l Logger) Panicj(j log.JSON)              { l.entry().WithFields(applog.Fields(j)).Panic() }
