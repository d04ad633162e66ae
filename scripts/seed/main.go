package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"

	server_config "github.com/carson-networks/card-dashboard/internal/config"
)

// Seeds the database with two demo companies and enough transactions to
// exercise pagination. Run after migrations.

type seedTransaction struct {
	description string
	dataPoints  string
	date        time.Time
}

func newID() string {
	return uuid.Must(uuid.NewV4()).String()
}

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
}

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	db, err := sql.Open("postgres", env.ConnectionString())
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
		return
	}
	defer db.Close()

	exec := bob.NewDB(db)
	ctx := context.Background()

	companyABID := newID()
	companyXYZID := newID()

	companies := psql.Insert(
		im.Into("companies", "id", "name"),
		im.Values(psql.Arg(companyABID, "Company AB")),
		im.Values(psql.Arg(companyXYZID, "Company XYZ")),
	)
	if _, err := bob.Exec(ctx, exec, companies); err != nil {
		logrus.WithError(err).Fatal("seed companies")
		return
	}
	logrus.Info("Companies created")

	cards := psql.Insert(
		im.Into("cards", "id", "company_id", "is_active", "image_url"),
		im.Values(psql.Arg(newID(), companyABID, false, "https://placeholdercard.com/300x180/2563eb/")),
		im.Values(psql.Arg(newID(), companyXYZID, true, "https://placeholdercard.com/300x180/16a34a/")),
	)
	if _, err := bob.Exec(ctx, exec, cards); err != nil {
		logrus.WithError(err).Fatal("seed cards")
		return
	}
	logrus.Info("Cards created")

	spendingLimits := psql.Insert(
		im.Into("spending_limits", "company_id", "current", "limit_amount", "currency"),
		im.Values(psql.Arg(companyABID, decimal.NewFromInt(5400), decimal.NewFromInt(10000), "kr")),
		im.Values(psql.Arg(companyXYZID, decimal.NewFromInt(8200), decimal.NewFromInt(15000), "kr")),
	)
	if _, err := bob.Exec(ctx, exec, spendingLimits); err != nil {
		logrus.WithError(err).Fatal("seed spending limits")
		return
	}
	logrus.Info("Spending limits created")

	invoices := psql.Insert(
		im.Into("invoices", "id", "company_id", "is_due"),
		im.Values(psql.Arg(newID(), companyABID, true)),
		im.Values(psql.Arg(newID(), companyXYZID, false)),
	)
	if _, err := bob.Exec(ctx, exec, invoices); err != nil {
		logrus.WithError(err).Fatal("seed invoices")
		return
	}
	logrus.Info("Invoices created")

	companyABTransactions := []seedTransaction{
		{"Office supplies", "Stockholm HQ", day(2024, 1, 15)},
		{"Marketing campaign", "Google Ads", day(2024, 1, 14)},
		{"Software license", "Adobe Creative", day(2024, 1, 13)},
	}
	for i := 0; i < 54; i++ {
		companyABTransactions = append(companyABTransactions, seedTransaction{
			description: fmt.Sprintf("Business expense %d", i+4),
			dataPoints:  "Location: Stockholm",
			date:        day(2024, 1, 12).AddDate(0, 0, -i),
		})
	}
	if err := insertTransactions(ctx, exec, companyABID, companyABTransactions); err != nil {
		logrus.WithError(err).Fatal("seed Company AB transactions")
		return
	}
	logrus.Info("Company AB transactions created")

	companyXYZTransactions := []seedTransaction{
		{"Business travel", "SAS Airlines", day(2024, 1, 16)},
		{"Client dinner", "Restaurant NK", day(2024, 1, 15)},
		{"Equipment purchase", "Dell Computers", day(2024, 1, 14)},
	}
	for i := 0; i < 42; i++ {
		companyXYZTransactions = append(companyXYZTransactions, seedTransaction{
			description: fmt.Sprintf("Company XYZ expense %d", i+7),
			dataPoints:  "Location: Gothenburg",
			date:        day(2024, 1, 11).AddDate(0, 0, -i),
		})
	}
	if err := insertTransactions(ctx, exec, companyXYZID, companyXYZTransactions); err != nil {
		logrus.WithError(err).Fatal("seed Company XYZ transactions")
		return
	}
	logrus.Info("Company XYZ transactions created")

	logrus.Info("Seed completed")
}

func insertTransactions(ctx context.Context, exec bob.Executor, companyID string, rows []seedTransaction) error {
	mods := []bob.Mod[*dialect.InsertQuery]{
		im.Into("transactions", "id", "company_id", "description", "data_points", "date"),
	}
	for _, tx := range rows {
		mods = append(mods, im.Values(psql.Arg(newID(), companyID, tx.description, tx.dataPoints, tx.date)))
	}

	_, err := bob.Exec(ctx, exec, psql.Insert(mods...))
	return err
}
