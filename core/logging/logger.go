package logging

import (
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

var (
	Logger *zap.Logger
)

func init() {
	// keep a usable logger before InitLogging runs (tests, tools)
	Logger = zap.NewNop()
}

//InitLogging - initialize the logging submodule
func InitLogging(mode string) {
	var logName = "log/stakelock.log"
	var logWriter = getWriteSyncer(logName)

	var cfg zap.Config
	if mode != "development" {
		cfg = zap.NewProductionConfig()
		cfg.DisableCaller = true
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.LevelKey = "level"
		cfg.EncoderConfig.NameKey = "name"
		cfg.EncoderConfig.MessageKey = "msg"
		cfg.EncoderConfig.CallerKey = "caller"
		cfg.EncoderConfig.StacktraceKey = "stacktrace"
		if viper.GetBool("logging.console") {
			logWriter = zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), logWriter)
		}
	}
	if err := cfg.Level.UnmarshalText([]byte(viper.GetString("logging.level"))); err != nil {
		cfg.Level.SetLevel(zapcore.InfoLevel)
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(getEncoder(cfg), logWriter, cfg.Level)
	option := zap.WrapCore(func(zapcore.Core) zapcore.Core { return core })
	l, err := cfg.Build(option)
	if err != nil {
		panic(err)
	}

	Logger = l
}

func getEncoder(conf zap.Config) zapcore.Encoder {
	switch conf.Encoding {
	case "json":
		return zapcore.NewJSONEncoder(conf.EncoderConfig)
	case "console":
		return zapcore.NewConsoleEncoder(conf.EncoderConfig)
	default:
		panic("unknown encoding")
	}
}

func getWriteSyncer(logName string) zapcore.WriteSyncer {
	var ioWriter = &lumberjack.Logger{
		Filename:   logName,
		MaxSize:    100, // MB
		MaxBackups: 5,
		MaxAge:     28, // days
		LocalTime:  false,
		Compress:   false,
	}
	return zapcore.AddSync(ioWriter)
}
