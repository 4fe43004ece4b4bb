package holiday

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// CalendarFile is the YAML layout accepted by ParseCalendar:
//
//	holidays:
//	  - name: Republic Day
//	    date: 2025-01-26
//	  - name: Raksha Bandhan
//	    date: 2025-08-09
//	    optional: true
type CalendarFile struct {
	Holidays []CalendarEntry `yaml:"holidays"`
}

// CalendarEntry is one holiday in a calendar file
type CalendarEntry struct {
	Name        string `yaml:"name"`
	Date        string `yaml:"date"`
	Description string `yaml:"description,omitempty"`
	Optional    bool   `yaml:"optional,omitempty"`
}

// ParseCalendar decodes a YAML holiday calendar into import entries
func ParseCalendar(r io.Reader) ([]HolidayInput, error) {
	var file CalendarFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("calendar is empty")
		}
		return nil, fmt.Errorf("invalid calendar: %w", err)
	}
	if len(file.Holidays) == 0 {
		return nil, fmt.Errorf("calendar has no holidays")
	}

	entries := make([]HolidayInput, 0, len(file.Holidays))
	for i, h := range file.Holidays {
		d, err := time.Parse(time.DateOnly, h.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %d (%s): date must be YYYY-MM-DD", i+1, h.Name)
		}
		entries = append(entries, HolidayInput{
			Name:        h.Name,
			Date:        d,
			Description: h.Description,
			IsOptional:  h.Optional,
		})
	}
	return entries, nil
}
