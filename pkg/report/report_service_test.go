package report

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/entities"
	"Food-Wastage-Management/internal/utils/testdb"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeS3 struct {
	uploads   map[string][]byte
	uploadErr error
}

func (f *fakeS3) UploadFile(_ context.Context, objectKey string, body []byte, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.uploads[objectKey] = body
	return objectKey, nil
}

func (f *fakeS3) GetFile(_ context.Context, objectKey string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.uploads[objectKey])), nil
}

func (f *fakeS3) DeleteFile(_ context.Context, objectKey string) error {
	delete(f.uploads, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://reports.example.test/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, "https://reports.example.test/") {
		return ""
	}
	return strings.TrimPrefix(link, "https://reports.example.test/")
}

func newSeededService(t *testing.T) ReportService {
	t.Helper()
	db := testdb.New(t)
	testdb.Seed(t, db, testdb.DefaultFixture())
	return NewReportService(NewReportRepository(db), nil)
}

func TestListReports(t *testing.T) {
	infos := NewReportService(nil, nil).ListReports()
	require.Len(t, infos, 15)

	seen := map[string]bool{}
	for i, info := range infos {
		assert.Equal(t, i+1, info.Position)
		assert.False(t, seen[info.Key], "duplicate key %s", info.Key)
		seen[info.Key] = true
	}
	assert.Equal(t, "Providers per City", infos[0].Name)
	assert.Equal(t, "Most Claimed Meal Type", infos[14].Name)
}

func TestRunReportLookup(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	for _, name := range []string{"Providers per City", "providers per city", "providers-per-city", "1", " 1 "} {
		table, err := svc.RunReport(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, "providers-per-city", table.Key)
	}

	for _, name := range []string{"", "0", "16", "Unknown Report"} {
		_, err := svc.RunReport(ctx, name)
		assert.ErrorIs(t, err, domain.ErrReportNotFound, name)
		assert.ErrorIs(t, err, domain.ErrNotFound, name)
	}
}

func TestRunReportResults(t *testing.T) {
	svc := newSeededService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		chart domain.ChartKind
		rows  [][]any
	}{
		{"Providers per City", domain.ChartBar, [][]any{{"Bengaluru", int64(1)}, {"Chennai", int64(2)}}},
		{"Receivers per City", domain.ChartBar, [][]any{{"Bengaluru", int64(1)}, {"Chennai", int64(2)}}},
		{"Most Contributing Provider Type", domain.ChartBar, [][]any{{"Restaurant", int64(2)}}},
		{"Provider Contact Info (Bengaluru)", domain.ChartTable, [][]any{{"Annapurna Kitchen", "080-1111"}}},
		{"Receivers with Most Claims", domain.ChartBar, [][]any{
			{"City Food Bank", int64(2)},
			{"Hope Shelter", int64(2)},
			{"Quiet Hands", int64(0)},
		}},
		{"Total Food Quantity Available", domain.ChartTable, [][]any{{int64(23)}}},
		{"City with Highest Food Listings", domain.ChartBar, [][]any{{"Chennai", int64(2)}}},
		{"Most Common Food Types", domain.ChartBar, [][]any{
			{"Non-Vegetarian", int64(1)},
			{"Vegan", int64(1)},
			{"Vegetarian", int64(1)},
		}},
		{"Claims Count per Food Item", domain.ChartBar, [][]any{
			{"Rice", int64(2)},
			{"Bread", int64(1)},
			{"Chicken Curry", int64(1)},
		}},
		{"Provider with Most Completed Claims", domain.ChartBar, [][]any{{"Annapurna Kitchen", int64(2)}}},
		{"Total Quantity Donated per Provider", domain.ChartBar, [][]any{
			{"Annapurna Kitchen", int64(10)},
			{"Green Bowl", int64(8)},
			{"Fresh Mart", int64(5)},
		}},
		{"Claims per Food Type", domain.ChartBar, [][]any{
			{"Vegetarian", int64(2)},
			{"Non-Vegetarian", int64(1)},
			{"Vegan", int64(1)},
		}},
		{"Most Claimed Meal Type", domain.ChartBar, [][]any{
			{"Lunch", int64(2)},
			{"Breakfast", int64(1)},
			{"Dinner", int64(1)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := svc.RunReport(ctx, tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.name, table.Name)
			assert.Equal(t, tt.chart, table.Chart)
			assert.Equal(t, tt.rows, table.Rows)
		})
	}
}

func TestClaimStatusPercentage(t *testing.T) {
	svc := newSeededService(t)

	table, err := svc.RunReport(context.Background(), "claim-status-percentage")
	require.NoError(t, err)
	assert.Equal(t, domain.ChartBar, table.Chart)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "Completed", table.Rows[0][0])
	assert.Equal(t, int64(3), table.Rows[0][1])
	assert.True(t, decimal.NewFromInt(75).Equal(table.Rows[0][2].(decimal.Decimal)))

	assert.Equal(t, "Pending", table.Rows[1][0])
	assert.Equal(t, int64(1), table.Rows[1][1])
	assert.True(t, decimal.NewFromInt(25).Equal(table.Rows[1][2].(decimal.Decimal)))
}

func TestClaimStatusPercentageSumsToHundred(t *testing.T) {
	db := testdb.New(t)
	f := testdb.DefaultFixture()
	f.Claims = append(f.Claims,
		entities.Claim{ClaimID: 5, FoodID: 2, ReceiverID: 3, Status: entities.ClaimStatusCancelled},
		entities.Claim{ClaimID: 6, FoodID: 3, ReceiverID: 3, Status: entities.ClaimStatusPending},
	)
	testdb.Seed(t, db, f)

	table, err := NewReportService(NewReportRepository(db), nil).RunReport(context.Background(), "13")
	require.NoError(t, err)
	require.Len(t, table.Rows, 3)

	sum := decimal.Zero
	for _, row := range table.Rows {
		sum = sum.Add(row[2].(decimal.Decimal))
	}
	// 50 + 16.67 + 33.33
	assert.True(t, sum.Sub(decimal.NewFromInt(100)).Abs().LessThanOrEqual(decimal.RequireFromString("0.02")), sum.String())
}

func TestAverageQuantityPerReceiver(t *testing.T) {
	svc := newSeededService(t)

	table, err := svc.RunReport(context.Background(), "avg-quantity-per-receiver")
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "City Food Bank", table.Rows[0][0])
	assert.True(t, decimal.NewFromInt(9).Equal(table.Rows[0][1].(decimal.Decimal)))
	assert.Equal(t, "Hope Shelter", table.Rows[1][0])
	assert.True(t, decimal.RequireFromString("7.5").Equal(table.Rows[1][1].(decimal.Decimal)))
}

func TestReportsOnEmptyStore(t *testing.T) {
	svc := NewReportService(NewReportRepository(testdb.New(t)), nil)
	ctx := context.Background()

	table, err := svc.RunReport(ctx, "total-quantity")
	require.NoError(t, err)
	assert.Equal(t, [][]any{{int64(0)}}, table.Rows)

	for _, info := range svc.ListReports() {
		if info.Key == "total-quantity" {
			continue
		}
		table, err := svc.RunReport(ctx, info.Key)
		require.NoError(t, err, info.Key)
		assert.Empty(t, table.Rows, info.Key)
	}
}

func TestRunReportStoreFailure(t *testing.T) {
	db := testdb.New(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewReportService(NewReportRepository(db), nil).RunReport(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestExportReport(t *testing.T) {
	svc := newSeededService(t)

	fileName, data, err := svc.ExportReport(context.Background(), "claim-status-percentage")
	require.NoError(t, err)
	assert.Equal(t, "claim-status-percentage.xlsx", fileName)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	assert.Equal(t, "Claim Status Percentage", sheet)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Status", "Count_Status", "Percentage"}, rows[0])
	assert.Equal(t, []string{"Completed", "3", "75"}, rows[1])
}

func TestPublishReport(t *testing.T) {
	db := testdb.New(t)
	testdb.Seed(t, db, testdb.DefaultFixture())
	s3 := &fakeS3{}
	svc := NewReportService(NewReportRepository(db), s3).(*reportService)
	svc.now = func() time.Time { return time.Date(2025, 3, 18, 9, 30, 0, 0, time.UTC) }

	res, err := svc.PublishReport(context.Background(), "providers-per-city")
	require.NoError(t, err)
	assert.Equal(t, "reports/20250318T093000Z/providers-per-city.xlsx", res.Key)
	assert.Equal(t, "https://reports.example.test/"+res.Key, res.URL)
	assert.NotEmpty(t, s3.uploads[res.Key])
}

func TestPublishReportUploadFailure(t *testing.T) {
	db := testdb.New(t)
	testdb.Seed(t, db, testdb.DefaultFixture())
	uploadErr := errors.New("bucket unreachable")
	s3 := &fakeS3{uploadErr: uploadErr}
	logger, hook := logtest.NewNullLogger()
	svc := NewReportService(NewReportRepository(db), s3).(*reportService)
	svc.logger = logger
	svc.now = func() time.Time { return time.Date(2025, 3, 18, 9, 30, 0, 0, time.UTC) }

	_, err := svc.PublishReport(context.Background(), "providers-per-city")
	assert.ErrorIs(t, err, uploadErr)
	assert.Empty(t, s3.uploads)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "reports/20250318T093000Z/providers-per-city.xlsx", entry.Data["data"])
}

func TestPublishReportWithoutStorage(t *testing.T) {
	_, err := NewReportService(nil, nil).PublishReport(context.Background(), "1")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	err = NewReportService(nil, nil).UnpublishReport(context.Background(), "https://reports.example.test/reports/x.xlsx")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestUnpublishReport(t *testing.T) {
	db := testdb.New(t)
	testdb.Seed(t, db, testdb.DefaultFixture())
	s3 := &fakeS3{}
	svc := NewReportService(NewReportRepository(db), s3)
	ctx := context.Background()

	res, err := svc.PublishReport(ctx, "1")
	require.NoError(t, err)
	require.Contains(t, s3.uploads, res.Key)

	assert.ErrorIs(t, svc.UnpublishReport(ctx, "https://elsewhere.test/"+res.Key), domain.ErrValidation)
	assert.ErrorIs(t, svc.UnpublishReport(ctx, "https://reports.example.test/avatars/me.png"), domain.ErrValidation)

	require.NoError(t, svc.UnpublishReport(ctx, res.URL))
	assert.NotContains(t, s3.uploads, res.Key)
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Provider Contact Info (Bengalur", sheetName("Provider Contact Info (Bengaluru)"))
	assert.Equal(t, "ab", sheetName("a/b"))
	assert.Equal(t, "Report", sheetName("[]"))
}
