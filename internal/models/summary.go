package models

import "time"

// Summary is the persisted form of a finished run.
//
// Example JSON:
//
//	{
//	  "runId": "01HZX3NDEKTSV4RRFFQ69G5FAV",
//	  "source": "measurements.txt",
//	  "generatedAt": "2026-10-19T08:00:00Z",
//	  "workers": 2,
//	  "chunks": 2,
//	  "records": 3,
//	  "text": "{Berlin=20.0/20.0/20.0, Tokyo=-5.6/3.4/12.3}",
//	  "rows": [
//	    {"key": "Berlin", "min": "20.0", "mean": "20.0", "max": "20.0", "count": 1},
//	    {"key": "Tokyo", "min": "-5.6", "mean": "3.4", "max": "12.3", "count": 2}
//	  ]
//	}
type Summary struct {
	RunID       string       `json:"runId"`
	Source      string       `json:"source"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Workers     int          `json:"workers"`
	Chunks      int          `json:"chunks"`
	Records     uint64       `json:"records"`
	Text        string       `json:"text"`
	Rows        []SummaryRow `json:"rows"`
}

// SummaryRow is one rendered key, values already formatted to one decimal.
type SummaryRow struct {
	Key   string `json:"key"`
	Min   string `json:"min"`
	Mean  string `json:"mean"`
	Max   string `json:"max"`
	Count uint64 `json:"count"`
}
