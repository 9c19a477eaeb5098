// Package catalog loads the static strategy, asset-class and benchmark
// tables from embedded YAML.
//
// Lifecycle: load -> freeze -> serve. The catalog is loaded once at
// process start, validated, and never mutated afterwards, so concurrent
// readers need no synchronization.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rmoura/advisor/internal/domain"
)

//go:embed data/*.yaml
var dataFiles embed.FS

// Catalog holds the frozen reference tables
type Catalog struct {
	strategies    []domain.StrategyDefinition
	strategyIndex map[string]domain.StrategyDefinition
	assets        []domain.AssetClass
	assetIndex    map[string]domain.AssetClass
	benchmarks    []domain.BenchmarkComparison
}

// yaml-facing shapes; converted to domain types after parsing
type strategyFile struct {
	Strategies []struct {
		Name           string   `yaml:"name"`
		FocusTags      []string `yaml:"focus_tags"`
		ExpectedReturn float64  `yaml:"expected_return"`
		Volatility     float64  `yaml:"volatility"`
		Description    string   `yaml:"description"`
		Category       string   `yaml:"category"`
	} `yaml:"strategies"`
}

type assetFile struct {
	Assets []struct {
		Name           string `yaml:"name"`
		Color          string `yaml:"color"`
		ExpectedReturn struct {
			Pessimistic float64 `yaml:"pessimistic"`
			Baseline    float64 `yaml:"baseline"`
			Optimistic  float64 `yaml:"optimistic"`
		} `yaml:"expected_return"`
		Regulatory struct {
			SuitabilityProfiles []string `yaml:"suitability_profiles"`
			RequiredDisclosures []string `yaml:"required_disclosures"`
			RegulatoryCategory  string   `yaml:"regulatory_category"`
			TaxEfficiency       float64  `yaml:"tax_efficiency"`
		} `yaml:"regulatory_info"`
	} `yaml:"assets"`
}

type benchmarkFile struct {
	Benchmarks []struct {
		Name                   string  `yaml:"name"`
		ExpectedOutperformance float64 `yaml:"expected_outperformance"`
		HistoricalCorrelation  float64 `yaml:"historical_correlation"`
	} `yaml:"benchmarks"`
}

// Load parses and validates the embedded catalog files
func Load() (*Catalog, error) {
	c := &Catalog{
		strategyIndex: make(map[string]domain.StrategyDefinition),
		assetIndex:    make(map[string]domain.AssetClass),
	}

	if err := c.loadStrategies(); err != nil {
		return nil, fmt.Errorf("load strategies: %w", err)
	}
	if err := c.loadAssets(); err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	if err := c.loadBenchmarks(); err != nil {
		return nil, fmt.Errorf("load benchmarks: %w", err)
	}

	return c, nil
}

func (c *Catalog) loadStrategies() error {
	raw, err := dataFiles.ReadFile("data/strategies.yaml")
	if err != nil {
		return err
	}

	var file strategyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if len(file.Strategies) == 0 {
		return fmt.Errorf("no strategies defined")
	}

	for _, s := range file.Strategies {
		if s.Name == "" {
			return fmt.Errorf("strategy with empty name")
		}
		if _, exists := c.strategyIndex[s.Name]; exists {
			return fmt.Errorf("duplicate strategy name %q", s.Name)
		}

		def := domain.StrategyDefinition{
			Name:           s.Name,
			FocusTags:      s.FocusTags,
			ExpectedReturn: s.ExpectedReturn,
			Volatility:     s.Volatility,
			Description:    s.Description,
			Category:       domain.StrategyCategory(s.Category),
		}
		c.strategies = append(c.strategies, def)
		c.strategyIndex[s.Name] = def
	}

	return nil
}

func (c *Catalog) loadAssets() error {
	raw, err := dataFiles.ReadFile("data/assets.yaml")
	if err != nil {
		return err
	}

	var file assetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if len(file.Assets) == 0 {
		return fmt.Errorf("no asset classes defined")
	}

	for _, a := range file.Assets {
		if a.Name == "" {
			return fmt.Errorf("asset class with empty name")
		}
		if _, exists := c.assetIndex[a.Name]; exists {
			return fmt.Errorf("duplicate asset class name %q", a.Name)
		}

		ret := domain.ReturnRange{
			Pessimistic: a.ExpectedReturn.Pessimistic,
			Baseline:    a.ExpectedReturn.Baseline,
			Optimistic:  a.ExpectedReturn.Optimistic,
		}
		if ret.Pessimistic > ret.Baseline || ret.Baseline > ret.Optimistic {
			return fmt.Errorf("asset %q: expected returns not ordered pessimistic <= baseline <= optimistic", a.Name)
		}
		if a.Regulatory.TaxEfficiency < 0 || a.Regulatory.TaxEfficiency > 1 {
			return fmt.Errorf("asset %q: tax_efficiency %.2f outside [0,1]", a.Name, a.Regulatory.TaxEfficiency)
		}
		if len(a.Regulatory.SuitabilityProfiles) == 0 {
			return fmt.Errorf("asset %q: no suitability profiles", a.Name)
		}

		profiles := make([]domain.RiskProfile, 0, len(a.Regulatory.SuitabilityProfiles))
		for _, p := range a.Regulatory.SuitabilityProfiles {
			profile := domain.RiskProfile(p)
			if !profile.Valid() {
				return fmt.Errorf("asset %q: unknown suitability profile %q", a.Name, p)
			}
			profiles = append(profiles, profile)
		}

		asset := domain.AssetClass{
			Name:           a.Name,
			Color:          a.Color,
			ExpectedReturn: ret,
			Regulatory: domain.RegulatoryInfo{
				SuitabilityProfiles: profiles,
				RequiredDisclosures: a.Regulatory.RequiredDisclosures,
				RegulatoryCategory:  a.Regulatory.RegulatoryCategory,
				TaxEfficiency:       a.Regulatory.TaxEfficiency,
			},
		}
		c.assets = append(c.assets, asset)
		c.assetIndex[a.Name] = asset
	}

	return nil
}

func (c *Catalog) loadBenchmarks() error {
	raw, err := dataFiles.ReadFile("data/benchmarks.yaml")
	if err != nil {
		return err
	}

	var file benchmarkFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if len(file.Benchmarks) == 0 {
		return fmt.Errorf("no benchmarks defined")
	}

	for _, b := range file.Benchmarks {
		c.benchmarks = append(c.benchmarks, domain.BenchmarkComparison{
			Name:                   b.Name,
			ExpectedOutperformance: b.ExpectedOutperformance,
			HistoricalCorrelation:  b.HistoricalCorrelation,
		})
	}

	return nil
}

// Strategy looks up a strategy definition by name
func (c *Catalog) Strategy(name string) (domain.StrategyDefinition, bool) {
	s, ok := c.strategyIndex[name]
	return s, ok
}

// HasStrategy reports whether the named strategy exists
func (c *Catalog) HasStrategy(name string) bool {
	_, ok := c.strategyIndex[name]
	return ok
}

// Strategies returns all strategies in catalog order
func (c *Catalog) Strategies() []domain.StrategyDefinition {
	out := make([]domain.StrategyDefinition, len(c.strategies))
	copy(out, c.strategies)
	return out
}

// Asset looks up an asset class by name
func (c *Catalog) Asset(name string) (domain.AssetClass, bool) {
	a, ok := c.assetIndex[name]
	return a, ok
}

// HasAsset reports whether the named asset class exists
func (c *Catalog) HasAsset(name string) bool {
	_, ok := c.assetIndex[name]
	return ok
}

// Assets returns all asset classes in catalog order
func (c *Catalog) Assets() []domain.AssetClass {
	out := make([]domain.AssetClass, len(c.assets))
	copy(out, c.assets)
	return out
}

// Benchmarks returns the static benchmark comparison table
func (c *Catalog) Benchmarks() []domain.BenchmarkComparison {
	out := make([]domain.BenchmarkComparison, len(c.benchmarks))
	copy(out, c.benchmarks)
	return out
}
