package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "sysport"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	tableFlagName        = "table"
	strictFlagName       = "strict"
	dryRunFlagName       = "dry-run"
	formatFlagName       = "format"
	reportFlagName       = "report"
	reportFormatFlagName = "report-format"
	rootFlagName         = "root"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"

	patchTableKey   = "patch.table"
	patchStrictKey  = "patch.strict"
	checkRootKey    = "check.root"
	canonicalKey    = "check.canonical"
	scanDirKey      = "check.dir"
	extensionKey    = "check.extension"
	prefixKey       = "check.prefix"
	intTypeKey      = "check.int_type"
	checkFormatKey  = "check.format"
	reportKey       = "check.report"
	reportFormatKey = "check.report_format"

	// projectMarker identifies the SABOS checkout when no root is configured.
	projectMarker = "libs/sabos-syscall"

	defaultCanonical    = "libs/sabos-syscall/src/lib.rs"
	defaultScanDir      = "rust-std-sabos"
	defaultExtension    = ".rs"
	defaultPrefix       = "SYS_"
	defaultIntType      = "u64"
	defaultCheckFormat  = "text"
	defaultReportFormat = "yaml"
	defaultStrict       = false

	envPrefix = "SYSPORT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".sysport.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

// configReadErr holds a config file read failure other than "not found".
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(patchTableKey, "")
	viper.SetDefault(patchStrictKey, defaultStrict)
	viper.SetDefault(checkRootKey, "")
	viper.SetDefault(canonicalKey, defaultCanonical)
	viper.SetDefault(scanDirKey, defaultScanDir)
	viper.SetDefault(extensionKey, defaultExtension)
	viper.SetDefault(prefixKey, defaultPrefix)
	viper.SetDefault(intTypeKey, defaultIntType)
	viper.SetDefault(checkFormatKey, defaultCheckFormat)
	viper.SetDefault(reportKey, "")
	viper.SetDefault(reportFormatKey, defaultReportFormat)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing config file is the normal case; any other read error is
	// logged once the logger is configured.
	if err := viper.ReadInConfig(); err != nil && !isConfigNotFound(err) {
		configReadErr = err
	}
}

func isConfigNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError

	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)

	if configReadErr != nil {
		slog.Warn("config file ignored", "path", viper.ConfigFileUsed(), "error", configReadErr)
	}
}
