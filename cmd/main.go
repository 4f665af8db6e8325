package main

import (
	"github.com/ALEYI17/InfraSight_layerprof/internal/analysis"
	"github.com/ALEYI17/InfraSight_layerprof/internal/config"
	"github.com/ALEYI17/InfraSight_layerprof/internal/dataset"
	"github.com/ALEYI17/InfraSight_layerprof/internal/history"
	"github.com/ALEYI17/InfraSight_layerprof/internal/report"
	"github.com/ALEYI17/InfraSight_layerprof/pkg/logutil"
	"go.uber.org/zap"
)

func main() {
	logutil.InitLogger()

	logger := logutil.GetLogger()
	defer logger.Sync()

	cfg := config.LoadConfig()

	ds, err := dataset.Lookup(cfg.Dataset)
	if err != nil {
		logger.Fatal("Error loading dataset", zap.String("dataset", cfg.Dataset), zap.Error(err))
	}

	logger.Info("Dataset loaded",
		zap.String("dataset", ds.Name),
		zap.Int("layers", len(ds.Measurements)),
		zap.Float64("total_ms", ds.TotalTime))

	res, err := analysis.Analyze(ds, cfg.Acceleration)
	if err != nil {
		logger.Fatal("Error analyzing dataset", zap.Error(err))
	}

	if err := report.WriteFile(cfg.OutputPath, report.Render(res)); err != nil {
		logger.Fatal("Error writing report", zap.String("path", cfg.OutputPath), zap.Error(err))
	}

	summaries, err := history.Summarize(dataset.Archive(), cfg.Confidence)
	if err != nil {
		logger.Error("Error summarizing recorded runs", zap.Error(err))
		return
	}
	logSummaries(logger, summaries)

	logger.Info("Report finished", zap.String("optimize", res.Target.String()))
}

func logSummaries(logger *zap.Logger, summaries []history.LayerSummary) {
	for _, s := range summaries {
		fields := []zap.Field{
			zap.String("layer", s.Label),
			zap.Int("runs", s.Runs),
			zap.Float64("median_ms", s.Millis.Center),
			zap.Float64("lo_ms", s.Millis.Lo),
			zap.Float64("hi_ms", s.Millis.Hi),
		}
		if s.Label != history.TotalLabel {
			fields = append(fields, zap.Float64("median_share", s.Share.Center))
		}
		if len(s.Millis.Warnings) > 0 {
			fields = append(fields, zap.Errors("warnings", s.Millis.Warnings))
		}
		logger.Info("Layer across runs", fields...)
	}
}
