package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/elearnhq/campus-records/internal/repository"
	"github.com/elearnhq/campus-records/internal/service"
	"github.com/elearnhq/campus-records/pkg/config"
	"github.com/elearnhq/campus-records/pkg/logger"
	"github.com/elearnhq/campus-records/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	repo := repository.New(logr)
	if err := repo.Load(cfg.Data.File); err != nil {
		logr.Fatal("failed to load data", zap.Error(err))
	}

	if cfg.Exports.Enabled {
		store, err := storage.NewLocalStore(cfg.Exports.StorageDir)
		if err != nil {
			logr.Fatal("failed to init export store", zap.Error(err))
		}
		exports := service.NewExportService(repo, store, logr)
		for _, course := range repo.Courses() {
			if _, err := exports.CourseRoster(course.Code(), service.FormatCSV); err != nil {
				logr.Warn("roster export failed",
					zap.String("course_code", course.Code()), zap.Error(err))
			}
		}
		for _, student := range repo.Students() {
			if _, err := exports.StudentTranscript(student.StudentID(), service.FormatCSV); err != nil {
				logr.Warn("transcript export failed",
					zap.String("student_id", student.StudentID()), zap.Error(err))
			}
		}
	}

	// The interactive menu surface sits outside this binary; it drives the
	// collections through the services and calls Save on exit. Writing the
	// document back verifies the load round-trips cleanly.
	if err := repo.Save(cfg.Data.File); err != nil {
		logr.Fatal("failed to save data", zap.Error(err))
	}
}
