package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"placesync/internal/models"
)

// Service runs the fetch → map → persist pipelines for both collections.
// Processing is sequential in source order; a bad or duplicate record never
// aborts the batch, only batch-fatal errors (unreachable source, unusable
// store) do.
type Service struct {
	store  StorePort
	source SourcePort
	log    *slog.Logger
	now    func() time.Time
}

func New(store StorePort, source SourcePort, log *slog.Logger, now func() time.Time) *Service {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, source: source, log: log, now: now}
}

// ImportAccounts imports the remote account collection. Re-running it against
// an unchanged collection writes nothing: every record comes back skipped on
// its duplicate email.
func (s *Service) ImportAccounts(ctx context.Context) (models.ImportReport, error) {
	runID := uuid.NewString()
	startedAt := s.now().UTC()

	raws, err := s.source.FetchAccounts(ctx)
	if err != nil {
		return models.ImportReport{}, err
	}

	results := make([]models.RecordResult, 0, len(raws))
	for i, raw := range raws {
		account, err := MapAccount(raw)
		if err == nil {
			_, err = s.store.InsertAccount(ctx, account)
		}
		result, fatal := classify(i, err)
		if fatal {
			return models.ImportReport{}, err
		}
		results = append(results, result)
	}

	report := buildReport(runID, "accounts", startedAt, results)
	s.log.Info("account import complete",
		"run_id", runID, "imported", report.Imported, "skipped", report.Skipped, "rejected", report.Rejected)
	return report, nil
}

// ImportPosts imports the remote post collection. Posts whose owning account
// is not persisted yet are rejected with a reference reason, never silently
// dropped.
func (s *Service) ImportPosts(ctx context.Context) (models.ImportReport, error) {
	runID := uuid.NewString()
	startedAt := s.now().UTC()

	raws, err := s.source.FetchPosts(ctx)
	if err != nil {
		return models.ImportReport{}, err
	}

	results := make([]models.RecordResult, 0, len(raws))
	for i, raw := range raws {
		post, err := MapPost(raw)
		if err == nil {
			_, err = s.store.InsertPost(ctx, post)
		}
		result, fatal := classify(i, err)
		if fatal {
			return models.ImportReport{}, err
		}
		results = append(results, result)
	}

	report := buildReport(runID, "posts", startedAt, results)
	s.log.Info("post import complete",
		"run_id", runID, "imported", report.Imported, "skipped", report.Skipped, "rejected", report.Rejected)
	return report, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return s.store.ListAccounts(ctx)
}

func (s *Service) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.store.ListPosts(ctx)
}

// DeleteAccount removes an account and, through the store's cascade, all of
// its posts.
func (s *Service) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	return s.store.DeleteAccount(ctx, id)
}

func (s *Service) DeletePost(ctx context.Context, id int64) (bool, error) {
	return s.store.DeletePost(ctx, id)
}

// classify turns a per-record error into its outcome. Mapping and reference
// failures reject the record, conflicts skip it as a duplicate; anything else
// from the store is batch-fatal.
func classify(index int, err error) (models.RecordResult, bool) {
	var (
		mapping   *MappingError
		conflict  *ConflictError
		reference *ReferenceError
	)
	switch {
	case err == nil:
		return models.RecordResult{Index: index, Outcome: models.OutcomeImported}, false
	case errors.As(err, &mapping):
		return models.RecordResult{Index: index, Outcome: models.OutcomeRejected, Reason: mapping.Error()}, false
	case errors.As(err, &conflict):
		return models.RecordResult{Index: index, Outcome: models.OutcomeSkipped, Reason: conflict.Error()}, false
	case errors.As(err, &reference):
		return models.RecordResult{Index: index, Outcome: models.OutcomeRejected, Reason: reference.Error()}, false
	default:
		return models.RecordResult{}, true
	}
}

func buildReport(runID, source string, startedAt time.Time, results []models.RecordResult) models.ImportReport {
	countOutcome := func(o models.Outcome) int {
		return lo.CountBy(results, func(r models.RecordResult) bool { return r.Outcome == o })
	}
	return models.ImportReport{
		RunID:     runID,
		Source:    source,
		StartedAt: startedAt,
		Imported:  countOutcome(models.OutcomeImported),
		Skipped:   countOutcome(models.OutcomeSkipped),
		Rejected:  countOutcome(models.OutcomeRejected),
		Rejections: lo.Filter(results, func(r models.RecordResult, _ int) bool {
			return r.Outcome == models.OutcomeRejected
		}),
	}
}
