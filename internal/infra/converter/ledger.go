package converter

import (
	"loyalty-ledger/internal/domain/business"
	"loyalty-ledger/internal/domain/ledger"
	"loyalty-ledger/internal/domain/redemption"
	sqlc "loyalty-ledger/internal/infra/sqlc/generated"
	"loyalty-ledger/internal/pkg/pgconv"
)

func EntryToInsertParams(e *ledger.Entry) sqlc.InsertLedgerEntryParams {
	return sqlc.InsertLedgerEntryParams{
		ID:             e.ID(),
		CustomerID:     e.CustomerID(),
		BusinessID:     e.BusinessID(),
		Delta:          e.Delta(),
		Kind:           e.Kind().String(),
		Reason:         e.Reason().String(),
		BalanceAfter:   e.BalanceAfter(),
		IdempotencyKey: e.IdempotencyKey().String(),
		Note:           pgconv.OptionalStringToPgtype(e.Note()),
		CreatedAt:      pgconv.TimeToPgtype(e.CreatedAt()),
	}
}

// EntryFromRow rebuilds a stored entry. Kind and reason are checked because the
// columns are plain text.
func EntryFromRow(row sqlc.LedgerEntries) (*ledger.Entry, error) {
	kind, err := ledger.NewKind(row.Kind)
	if err != nil {
		return nil, err
	}
	reason, err := ledger.NewReason(row.Reason)
	if err != nil {
		return nil, err
	}
	return ledger.ReconstructEntry(
		row.ID,
		row.Seq,
		ledger.Partition{CustomerID: row.CustomerID, BusinessID: row.BusinessID},
		row.Delta,
		kind,
		reason,
		row.BalanceAfter,
		ledger.IdempotencyKey(row.IdempotencyKey),
		pgconv.StringFromPgtype(row.Note),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func EntriesFromRows(rows []sqlc.LedgerEntries) ([]*ledger.Entry, error) {
	entries := make([]*ledger.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := EntryFromRow(row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func RedemptionToCreateParams(r *redemption.Redemption) sqlc.CreateRedemptionParams {
	return sqlc.CreateRedemptionParams{
		ID:            r.ID(),
		CustomerID:    r.CustomerID(),
		BusinessID:    r.BusinessID(),
		RewardID:      r.RewardID(),
		LedgerEntryID: r.LedgerEntryID(),
		PointsSpent:   r.PointsSpent(),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RedemptionFromRow(row sqlc.Redemptions) *redemption.Redemption {
	return redemption.ReconstructRedemption(
		row.ID, row.CustomerID, row.BusinessID, row.RewardID, row.LedgerEntryID,
		row.PointsSpent,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func EarningPolicyFromRow(row sqlc.Businesses) *business.EarningPolicy {
	return business.ReconstructEarningPolicy(row.ID, row.PointsPerCheckIn, pgconv.TimeFromPgtype(row.UpdatedAt))
}
