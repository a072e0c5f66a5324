package service

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"printer_sync/internal/models"
	"printer_sync/internal/transport"
)

// Reconciler merges raw backend payloads into a PrinterState.
//
// Whole blocks that are missing keep their last-seen values; fields missing
// inside a block that is present are zero-filled. Malformed input is
// normalized, never reported.
type Reconciler struct{}

func NewReconciler() *Reconciler { return &Reconciler{} }

// ApplyStatus merges a status payload.
func (r *Reconciler) ApplyStatus(st *models.PrinterState, p transport.Payload) {
	if printer, ok := object(p, "printer"); ok {
		if status, ok := stringField(printer, "status"); ok {
			st.Status = status
		}
		st.Nozzle = temperature(printer, "nozzle")
		st.Bed = temperature(printer, "bed")
	}

	if job, ok := object(p, "job"); ok {
		st.Job = models.Job{}
		if file, ok := object(job, "file"); ok {
			if name, ok := stringField(file, "name"); ok {
				st.Job.Filename = &name
			}
		}
		if est, ok := number(job, "estimatedPrintTime"); ok {
			st.Job.EstimatedTime = &est
		}
	}

	if progress, ok := object(p, "progress"); ok {
		st.Progress = models.Progress{
			Completion:    numberOrZero(progress, "completion"),
			PrintTime:     numberOrZero(progress, "printTime"),
			PrintTimeLeft: numberOrZero(progress, "printTimeLeft"),
		}
	}
}

// ApplySensor merges the result of a sensor fetch. Any failure, or a reply
// without a boolean "filament", reads as filament present.
func (r *Reconciler) ApplySensor(st *models.PrinterState, p transport.Payload, fetchErr error) {
	if fetchErr != nil {
		st.Sensor.Filament = true
		return
	}
	present, ok := p["filament"].(bool)
	if !ok {
		present = true
	}
	st.Sensor.Filament = present
}

func temperature(parent map[string]any, key string) models.Temperature {
	obj, _ := object(parent, key)
	return models.Temperature{
		Current: numberOrZero(obj, "actual"),
		Target:  numberOrZero(obj, "target"),
	}
}

// object returns m[key] when it is a JSON object.
func object(m map[string]any, key string) (map[string]any, bool) {
	if m == nil {
		return nil, false
	}
	obj, ok := m[key].(map[string]any)
	return obj, ok
}

func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// number coerces JSON numbers and numeric strings. NaN and Inf count as absent.
func number(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	var f float64
	switch v := m[key].(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func numberOrZero(m map[string]any, key string) float64 {
	f, _ := number(m, key)
	return f
}
