// Command submissions imports form submissions from a CSV export into a
// running site instance through its public and admin APIs.
//
// Expected CSV header: name,email,contact_number,event_type,event_date,
// event_time,location,message,status. Rows with event fields go through the
// event intake endpoint, the rest through the contact endpoint; when a row
// carries a status, it is patched afterwards via the admin API.
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type Config struct {
	CSVFile       string
	SiteURL       string
	AdminPassword string
	DryRun        bool
}

type Importer struct {
	config       Config
	client       *http.Client
	sessionToken string
}

type Result struct {
	Created int
	Skipped int
	Errors  []string
}

func main() {
	csvFile := flag.String("csv", "", "Path to CSV file (required)")
	siteURL := flag.String("site-url", "http://localhost:8090", "Site API URL")
	adminPassword := flag.String("admin-password", "", "Admin password (required unless -dry-run)")
	dryRun := flag.Bool("dry-run", false, "Parse and print without importing")
	flag.Parse()

	if *csvFile == "" || (*adminPassword == "" && !*dryRun) {
		fmt.Println("Usage: go run ./import/submissions -csv FILE -admin-password PASS")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	config := Config{
		CSVFile:       *csvFile,
		SiteURL:       strings.TrimRight(*siteURL, "/"),
		AdminPassword: *adminPassword,
		DryRun:        *dryRun,
	}

	importer := &Importer{
		config: config,
		client: &http.Client{Timeout: 30 * time.Second},
	}

	result, err := importer.Run()
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Println("\n=== Import Complete ===")
	fmt.Printf("Created: %d\n", result.Created)
	fmt.Printf("Skipped: %d\n", result.Skipped)
	if len(result.Errors) > 0 {
		fmt.Printf("Errors: %d\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}

func (i *Importer) Run() (*Result, error) {
	result := &Result{Errors: []string{}}

	rows, err := i.parseCSV()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	log.Printf("Parsed %d rows from CSV", len(rows))

	if i.config.DryRun {
		for _, r := range rows {
			kind := "contact"
			if isEventRow(r) {
				kind = "event"
			}
			fmt.Printf("  %s | %s | %s | %s | status=%s\n",
				kind, r["name"], r["email"], r["event_type"], r["status"])
		}
		return result, nil
	}

	log.Println("Authenticating...")
	if err := i.login(); err != nil {
		return nil, fmt.Errorf("admin login failed: %w", err)
	}

	for _, row := range rows {
		if err := i.importRow(row, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", row["email"], err))
		}
	}

	return result, nil
}

func (i *Importer) parseCSV() ([]map[string]string, error) {
	file, err := os.Open(i.config.CSVFile)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	for idx, h := range header {
		header[idx] = strings.ToLower(strings.TrimSpace(h))
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := map[string]string{}
		for idx, value := range record {
			if idx < len(header) {
				row[header[idx]] = strings.TrimSpace(value)
			}
		}
		if row["name"] == "" && row["email"] == "" {
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func isEventRow(row map[string]string) bool {
	return row["event_type"] != "" || row["event_date"] != "" || row["event_time"] != ""
}

// login exchanges the admin password for a session token used to patch
// statuses after intake.
func (i *Importer) login() error {
	body, _ := json.Marshal(map[string]string{"password": i.config.AdminPassword})
	resp, err := i.client.Post(i.config.SiteURL+"/api/admin/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	i.sessionToken = out.Token
	return nil
}

func (i *Importer) importRow(row map[string]string, result *Result) error {
	endpoint := "/api/contact"
	payload := map[string]string{
		"name":    row["name"],
		"email":   row["email"],
		"message": row["message"],
	}
	if isEventRow(row) {
		endpoint = "/api/submissions"
		payload["contactNumber"] = row["contact_number"]
		payload["eventType"] = row["event_type"]
		payload["eventDate"] = row["event_date"]
		payload["eventTime"] = row["event_time"]
		payload["location"] = row["location"]
	}

	body, _ := json.Marshal(payload)
	resp, err := i.client.Post(i.config.SiteURL+endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body)
		result.Skipped++
		log.Printf("Skipped %s: %s", row["email"], strings.TrimSpace(string(respBody)))
		return nil
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return err
	}

	// Restore the exported status; intake always starts at new/pending
	if status := row["status"]; status != "" {
		if err := i.patchStatus(created.ID, status); err != nil {
			return fmt.Errorf("created but failed to set status: %w", err)
		}
	}

	result.Created++
	return nil
}

func (i *Importer) patchStatus(id, status string) error {
	body, _ := json.Marshal(map[string]string{"status": status})
	req, err := http.NewRequest(http.MethodPatch,
		fmt.Sprintf("%s/api/admin/submissions/%s/status", i.config.SiteURL, id),
		bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+i.sessionToken)

	resp, err := i.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
