package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
	"github.com/piresc/crowdpulse/services/crowd"
)

const defaultPollInterval = 30 * time.Second

// CrowdUC implements crowd.CrowdUC. The cache holds one record per location
// and a merge always replaces the whole record.
type CrowdUC struct {
	gw         crowd.CrowdGW
	repo       crowd.CrowdRepo
	cfg        models.CrowdConfig
	classifier *Classifier
	now        models.Clock
	loc        *time.Location

	// writeMu orders snapshot writes the same way as cache merges
	writeMu sync.Mutex

	mu         sync.RWMutex
	records    map[string]models.CrowdRecord
	subscribed map[string]struct{}
	candidates map[string]models.LocationCandidate
}

// Option configures a CrowdUC
type Option func(*CrowdUC)

// WithClock pins the clock used for merge stamps and classification
func WithClock(now models.Clock) Option {
	return func(uc *CrowdUC) { uc.now = now }
}

// WithClassifier replaces the default classifier
func WithClassifier(c *Classifier) Option {
	return func(uc *CrowdUC) { uc.classifier = c }
}

// WithLocation sets the time zone heuristic windows are evaluated in
func WithLocation(loc *time.Location) Option {
	return func(uc *CrowdUC) { uc.loc = loc }
}

// NewCrowdUC creates the crowd engine. repo may be nil.
func NewCrowdUC(gw crowd.CrowdGW, repo crowd.CrowdRepo, cfg models.CrowdConfig, opts ...Option) *CrowdUC {
	uc := &CrowdUC{
		gw:         gw,
		repo:       repo,
		cfg:        cfg,
		now:        models.Now,
		loc:        time.Local,
		records:    make(map[string]models.CrowdRecord),
		subscribed: make(map[string]struct{}),
		candidates: make(map[string]models.LocationCandidate),
	}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.classifier == nil {
		uc.classifier = NewClassifier(nil)
	}
	return uc
}

// Subscribe registers for push updates and requests an initial snapshot
func (uc *CrowdUC) Subscribe(ctx context.Context, locationIDs []string) error {
	if len(locationIDs) == 0 {
		return nil
	}

	uc.mu.Lock()
	for _, id := range locationIDs {
		uc.subscribed[id] = struct{}{}
	}
	uc.mu.Unlock()

	return uc.request(models.CrowdDataRequest{LocationIDs: locationIDs, Subscribe: true})
}

// Unsubscribe stops push updates for the given locations
func (uc *CrowdUC) Unsubscribe(ctx context.Context, locationIDs []string) error {
	if len(locationIDs) == 0 {
		return nil
	}

	uc.mu.Lock()
	for _, id := range locationIDs {
		delete(uc.subscribed, id)
	}
	uc.mu.Unlock()

	return uc.request(models.CrowdDataRequest{LocationIDs: locationIDs, Subscribe: false})
}

// PollSubscribed re-requests a snapshot of every subscribed location
func (uc *CrowdUC) PollSubscribed(ctx context.Context) error {
	ids := uc.subscribedIDs()
	if len(ids) == 0 {
		return nil
	}
	return uc.request(models.CrowdDataRequest{LocationIDs: ids})
}

func (uc *CrowdUC) request(req models.CrowdDataRequest) error {
	if err := uc.gw.RequestCrowdData(req); err != nil {
		if errors.Is(err, models.ErrTransportUnavailable) {
			return nil
		}
		return fmt.Errorf("failed to request crowd data: %w", err)
	}
	return nil
}

// UpdateCrowdData merges a batch into the cache. Each record replaces the
// cached one for its key and is stamped with the local receipt time.
func (uc *CrowdUC) UpdateCrowdData(ctx context.Context, batch []models.CrowdRecord) {
	uc.merge(ctx, batch)
}

func (uc *CrowdUC) merge(ctx context.Context, batch []models.CrowdRecord) []models.CrowdRecord {
	merged := make([]models.CrowdRecord, 0, len(batch))

	uc.writeMu.Lock()
	defer uc.writeMu.Unlock()

	uc.mu.Lock()
	for _, record := range batch {
		if record.LocationID == "" {
			logger.Warn("Dropping crowd record without location id")
			continue
		}
		record.LastUpdated = uc.now()
		uc.records[record.LocationID] = record
		merged = append(merged, record)
	}
	uc.mu.Unlock()

	uc.persist(ctx, merged)
	return merged
}

func (uc *CrowdUC) persist(ctx context.Context, records []models.CrowdRecord) {
	if uc.repo == nil {
		return
	}
	for _, record := range records {
		if err := uc.repo.SaveSnapshot(ctx, record); err != nil {
			logger.Warn("Failed to save crowd snapshot",
				logger.String("location_id", record.LocationID),
				logger.Err(err))
		}
	}
}

// AnalyzeOpenLocations classifies the open candidates only and merges the
// results. Closed candidates produce no record.
func (uc *CrowdUC) AnalyzeOpenLocations(ctx context.Context, candidates []models.LocationCandidate) []models.CrowdRecord {
	at := uc.now().In(uc.loc)
	batch := make([]models.CrowdRecord, 0, len(candidates))

	for _, candidate := range candidates {
		if !candidate.IsOpen {
			continue
		}
		var previous *models.CrowdRecord
		if rec, ok := uc.GetCrowdData(candidate.ID); ok {
			previous = &rec
		}
		batch = append(batch, uc.classifier.Classify(candidate, at, previous))
	}

	return uc.merge(ctx, batch)
}

// RegisterCandidates adds or replaces the locations analyzed by AnalyzeRegistered
func (uc *CrowdUC) RegisterCandidates(candidates []models.LocationCandidate) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, c := range candidates {
		uc.candidates[c.ID] = c
	}
}

// AnalyzeRegistered runs AnalyzeOpenLocations over the registered candidates
func (uc *CrowdUC) AnalyzeRegistered(ctx context.Context) error {
	uc.mu.RLock()
	candidates := make([]models.LocationCandidate, 0, len(uc.candidates))
	for _, c := range uc.candidates {
		candidates = append(candidates, c)
	}
	uc.mu.RUnlock()

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	records := uc.AnalyzeOpenLocations(ctx, candidates)
	logger.Debug("Crowd analysis finished",
		logger.Int("candidates", len(candidates)),
		logger.Int("classified", len(records)))
	return nil
}

// RefreshAnalytics pulls the analytics surface for each subscribed location.
// A failed location keeps its last known record.
func (uc *CrowdUC) RefreshAnalytics(ctx context.Context) error {
	ids := uc.subscribedIDs()
	batch := make([]models.CrowdRecord, 0, len(ids))
	var failed int
	var lastErr error

	for _, id := range ids {
		resp, err := uc.gw.FetchAnalytics(ctx, id)
		if err != nil {
			failed++
			lastErr = err
			logger.Warn("Failed to fetch crowd analytics",
				logger.String("location_id", id),
				logger.Err(err))
			continue
		}

		record, err := NormalizeAnalytics(id, resp)
		if err != nil {
			logger.Debug("Skipping analytics payload", logger.String("location_id", id), logger.Err(err))
			continue
		}
		if prev, ok := uc.GetCrowdData(id); ok {
			record.Coordinates = prev.Coordinates
		}
		batch = append(batch, record)
	}

	uc.merge(ctx, batch)

	if failed > 0 {
		return fmt.Errorf("analytics refresh failed for %d of %d locations: %w", failed, len(ids), lastErr)
	}
	return nil
}

// WarmStart fills the cache from the snapshot store without overwriting
// anything already received. Restored records keep their stored stamp.
func (uc *CrowdUC) WarmStart(ctx context.Context) error {
	if uc.repo == nil {
		return nil
	}

	records, err := uc.repo.LoadSnapshots(ctx)
	if err != nil {
		return fmt.Errorf("failed to load crowd snapshots: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	restored := 0
	for _, record := range records {
		if _, ok := uc.records[record.LocationID]; ok {
			continue
		}
		uc.records[record.LocationID] = record
		restored++
	}

	logger.Info("Crowd cache warm start", logger.Int("restored", restored))
	return nil
}

// GetCrowdData returns the cached record of one location
func (uc *CrowdUC) GetCrowdData(locationID string) (models.CrowdRecord, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	record, ok := uc.records[locationID]
	return record, ok
}

// GetLocationsByLevel returns the cached records at one level, by location id
func (uc *CrowdUC) GetLocationsByLevel(level models.CrowdLevel) []models.CrowdRecord {
	return uc.collect(func(r models.CrowdRecord) bool { return r.Level == level })
}

// GetAllCrowdData returns every cached record, by location id
func (uc *CrowdUC) GetAllCrowdData() []models.CrowdRecord {
	return uc.collect(func(models.CrowdRecord) bool { return true })
}

// GetNearbyCrowd returns cached records within radiusKm of origin, nearest first
func (uc *CrowdUC) GetNearbyCrowd(origin models.Coordinates, radiusKm float64) []models.CrowdRecord {
	type hit struct {
		record   models.CrowdRecord
		distance float64
	}

	var hits []hit
	for _, record := range uc.GetAllCrowdData() {
		d := utils.CalculateDistance(origin, record.Coordinates)
		if d <= radiusKm {
			hits = append(hits, hit{record: record, distance: d})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })

	out := make([]models.CrowdRecord, len(hits))
	for i, h := range hits {
		out[i] = h.record
	}
	return out
}

// IsStale reports whether a record is older than StaleFactor poll intervals
func (uc *CrowdUC) IsStale(record models.CrowdRecord) bool {
	if record.LastUpdated.IsZero() {
		return true
	}
	interval := uc.cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	factor := uc.cfg.StaleFactor
	if factor <= 0 {
		factor = 2
	}
	return uc.now().Sub(record.LastUpdated) > time.Duration(factor*float64(interval))
}

func (uc *CrowdUC) collect(keep func(models.CrowdRecord) bool) []models.CrowdRecord {
	uc.mu.RLock()
	out := make([]models.CrowdRecord, 0, len(uc.records))
	for _, record := range uc.records {
		if keep(record) {
			out = append(out, record)
		}
	}
	uc.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].LocationID < out[j].LocationID })
	return out
}

func (uc *CrowdUC) subscribedIDs() []string {
	uc.mu.RLock()
	ids := make([]string, 0, len(uc.subscribed))
	for id := range uc.subscribed {
		ids = append(ids, id)
	}
	uc.mu.RUnlock()

	sort.Strings(ids)
	return ids
}
