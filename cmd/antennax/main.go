package main

import (
	"flag"
	"os"

	"github.com/lintang-b-s/Antennax/pkg/engine"
	"github.com/lintang-b-s/Antennax/pkg/formatter"
	"github.com/lintang-b-s/Antennax/pkg/logger"
	"github.com/lintang-b-s/Antennax/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir        = flag.String("config_dir", "./data/", "directory holding config.yaml")
	gridFile         = flag.String("grid", "", "antenna grid file (.bz2 is decompressed)")
	originLabel      = flag.String("label", "", "label of the origin and destination antennas")
	originIndex      = flag.Int("origin_index", 0, "occurrence (0-based) of the label used as origin")
	destinationIndex = flag.Int("destination_index", 1, "occurrence (0-based) of the label used as destination")
	locationOrder    = flag.String("location_order", "", "computed | reversed")
	inBounds         = flag.Bool("in_bounds", false, "only list locations inside the grid")
	unique           = flag.Bool("unique", false, "drop repeated locations")
)

// flag name -> config key
var flagKeys = map[string]string{
	"grid":              "GRID_FILE",
	"label":             "ORIGIN_LABEL",
	"origin_index":      "ORIGIN_INDEX",
	"destination_index": "DESTINATION_INDEX",
	"location_order":    "LOCATION_ORDER",
	"in_bounds":         "FILTER_IN_BOUNDS",
	"unique":            "UNIQUE_LOCATIONS",
}

func main() {
	flag.Parse()
	if err := util.ReadConfig(*configDir); err != nil {
		panic(err)
	}
	flag.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			viper.Set(key, f.Value.(flag.Getter).Get())
		}
	})

	cfg, err := util.LoadAnalysisConfig()
	if err != nil {
		panic(err)
	}

	logger, err := logger.NewWithLevel(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	antennaEngine, err := engine.NewEngine(cfg.GridFile, logger, cfg.PathCacheSize)
	if err != nil {
		logger.Fatal("could not build antenna graph", zap.Error(err))
	}

	report, err := antennaEngine.Analyze(cfg)
	if err != nil {
		logger.Fatal("analysis failed", zap.Error(err))
	}

	if err := formatter.WriteReport(os.Stdout, report); err != nil {
		logger.Fatal("could not write report", zap.Error(err))
	}
}
