package settings

import (
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

const syncIntervalStep = 60

type (
	IStorage interface {
		GetJSON(key string, target any) (found bool, err error)
		SetJSON(key string, value any) (err error)
		Delete(keys ...string) (err error)
	}
)

type Service struct {
	storage  IStorage
	validate *validator.Validate
}

func NewService(storage IStorage) *Service {
	return &Service{
		storage:  storage,
		validate: validator.New(),
	}
}

// Get returns stored settings or the defaults when nothing is stored yet.
func (s *Service) Get() (settings entities.Settings, err error) {
	found, err := s.storage.GetJSON(constants.SettingsKey, &settings)
	if err != nil {
		return settings, fmt.Errorf("Get: %w", err)
	}

	if !found {
		return entities.DefaultSettings(), nil
	}

	return settings, nil
}

func (s *Service) Save(settings entities.Settings) (err error) {
	if err = s.Validate(settings); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	if err = s.storage.SetJSON(constants.SettingsKey, settings); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	log.Info().
		Int("thresholds", len(settings.Thresholds)).
		Int("syncIntervalSec", settings.SyncIntervalSec).
		Msg("Save: settings saved")
	return nil
}

func (s *Service) Validate(settings entities.Settings) (err error) {
	if err = s.validate.Struct(settings); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}

	if settings.SyncIntervalSec%syncIntervalStep != 0 {
		return fmt.Errorf("Validate: sync interval must be a multiple of %d seconds", syncIntervalStep)
	}

	ids := lo.Map(settings.Thresholds, func(rule entities.ThresholdConfig, _ int) string {
		return rule.ID
	})
	if slices.Contains(ids, "") {
		return fmt.Errorf("Validate: threshold without id")
	}

	if duplicates := lo.FindDuplicates(ids); len(duplicates) > 0 {
		return fmt.Errorf("Validate: duplicate threshold ids %v", duplicates)
	}

	return nil
}

// UpsertThreshold replaces the rule with the same id or appends a new one.
// A rule without id gets a fresh one.
func (s *Service) UpsertThreshold(rule entities.ThresholdConfig) (saved entities.ThresholdConfig, err error) {
	settings, err := s.Get()
	if err != nil {
		return saved, fmt.Errorf("UpsertThreshold: %w", err)
	}

	settings.Thresholds, saved = upsert(settings.Thresholds, rule)
	if err = s.Save(settings); err != nil {
		return saved, fmt.Errorf("UpsertThreshold: %w", err)
	}

	return saved, nil
}

func (s *Service) DeleteThreshold(id string) (err error) {
	settings, err := s.Get()
	if err != nil {
		return fmt.Errorf("DeleteThreshold: %w", err)
	}

	index := slices.IndexFunc(settings.Thresholds, func(rule entities.ThresholdConfig) bool {
		return rule.ID == id
	})
	if index < 0 {
		return fmt.Errorf("DeleteThreshold: %w: %s", errs.ErrThresholdNotFound, id)
	}

	settings.Thresholds = slices.Delete(settings.Thresholds, index, index+1)
	if err = s.Save(settings); err != nil {
		return fmt.Errorf("DeleteThreshold: %w", err)
	}

	return nil
}

// SetSyncInterval updates the sync interval in seconds.
func (s *Service) SetSyncInterval(seconds int) (err error) {
	settings, err := s.Get()
	if err != nil {
		return fmt.Errorf("SetSyncInterval: %w", err)
	}

	settings.SyncIntervalSec = seconds
	if err = s.Save(settings); err != nil {
		return fmt.Errorf("SetSyncInterval: %w", err)
	}

	return nil
}

type thresholdsFile struct {
	Thresholds []entities.ThresholdConfig `yaml:"thresholds"`
}

// ImportThresholds upserts every rule of a yaml file. The whole import is
// rejected when any rule is invalid.
func (s *Service) ImportThresholds(path string) (imported int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("ImportThresholds: %w", err)
	}

	var file thresholdsFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("ImportThresholds: %w", err)
	}

	settings, err := s.Get()
	if err != nil {
		return 0, fmt.Errorf("ImportThresholds: %w", err)
	}

	for _, rule := range file.Thresholds {
		settings.Thresholds, _ = upsert(settings.Thresholds, rule)
	}

	if err = s.Save(settings); err != nil {
		return 0, fmt.Errorf("ImportThresholds: %w", err)
	}

	return len(file.Thresholds), nil
}

// Reset drops stored settings.
func (s *Service) Reset() (settings entities.Settings, err error) {
	if err = s.storage.Delete(constants.SettingsKey); err != nil {
		return settings, fmt.Errorf("Reset: %w", err)
	}

	return entities.DefaultSettings(), nil
}

func upsert(rules []entities.ThresholdConfig, rule entities.ThresholdConfig) ([]entities.ThresholdConfig, entities.ThresholdConfig) {
	if lo.IsEmpty(rule.ID) {
		rule.ID = uuid.NewString()
	}

	rules = slices.Clone(rules)
	if index := slices.IndexFunc(rules, func(existing entities.ThresholdConfig) bool {
		return existing.ID == rule.ID
	}); index >= 0 {
		rules[index] = rule
		return rules, rule
	}

	return append(rules, rule), rule
}
