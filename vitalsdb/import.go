package vitalsdb

import (
	"context"
	"fmt"
	"log"
	"time"
)

// ImportDataset replaces the stored dataset with the provided records and
// reference catalogs inside a single transaction. A failed import leaves the
// previously stored data untouched.
func (c *Client) ImportDataset(ctx context.Context, deaths []Death, departments []Department, municipalities []Municipality, causes []Cause) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)
		if c.config.verbose {
			log.Println("Importing mortality data took", c.importRuntime.String())
		}
	}()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting import transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	for _, stmt := range []string{"DELETE FROM deaths", "DELETE FROM departments", "DELETE FROM municipalities", "DELETE FROM causes"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("error clearing previous data: %w", err)
		}
	}

	deptStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO departments (code, name) VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing department insert: %w", err)
	}
	defer deptStmt.Close() // nolint:errcheck

	for _, department := range departments {
		if _, err := deptStmt.ExecContext(ctx, department.Code, department.Name); err != nil {
			return fmt.Errorf("error inserting department %s: %w", department.Code, err)
		}
	}

	muniStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO municipalities (code, department_code, name) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing municipality insert: %w", err)
	}
	defer muniStmt.Close() // nolint:errcheck

	for _, municipality := range municipalities {
		if _, err := muniStmt.ExecContext(ctx, municipality.Code, municipality.DepartmentCode, municipality.Name); err != nil {
			return fmt.Errorf("error inserting municipality %s: %w", municipality.Code, err)
		}
	}

	causeStmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO causes (code, name) VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing cause insert: %w", err)
	}
	defer causeStmt.Close() // nolint:errcheck

	for _, cause := range causes {
		if _, err := causeStmt.ExecContext(ctx, cause.Code, cause.Name); err != nil {
			return fmt.Errorf("error inserting cause %s: %w", cause.Code, err)
		}
	}

	deathStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO deaths (
			department_code, municipality_code, month, sex,
			age_group_code, age_group_label, cause_code
		) VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing death insert: %w", err)
	}
	defer deathStmt.Close() // nolint:errcheck

	for i, death := range deaths {
		_, err := deathStmt.ExecContext(ctx,
			death.DepartmentCode, death.MunicipalityCode, death.Month, death.Sex,
			death.AgeGroupCode, death.AgeGroupLabel, death.CauseCode,
		)
		if err != nil {
			return fmt.Errorf("error inserting death record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing import transaction: %w", err)
	}

	return nil
}
