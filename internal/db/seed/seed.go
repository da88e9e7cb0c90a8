// Package seed holds the default directory rows loaded into an empty database.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaults []byte

type Venue struct {
	ID                 int      `yaml:"id"`
	Name               string   `yaml:"name"`
	Address            string   `yaml:"address"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	Website            string   `yaml:"website"`
	FacebookLink       string   `yaml:"facebook_link"`
	ImageLink          string   `yaml:"image_link"`
	Genres             []string `yaml:"genres"`
	SeekingTalent      bool     `yaml:"seeking_talent"`
	SeekingDescription string   `yaml:"seeking_description"`
}

type Artist struct {
	ID                 int      `yaml:"id"`
	Name               string   `yaml:"name"`
	City               string   `yaml:"city"`
	State              string   `yaml:"state"`
	Phone              string   `yaml:"phone"`
	Website            string   `yaml:"website"`
	FacebookLink       string   `yaml:"facebook_link"`
	ImageLink          string   `yaml:"image_link"`
	Genres             []string `yaml:"genres"`
	SeekingVenue       bool     `yaml:"seeking_venue"`
	SeekingDescription string   `yaml:"seeking_description"`
}

type Show struct {
	ID        int       `yaml:"id"`
	VenueID   int       `yaml:"venue_id"`
	ArtistID  int       `yaml:"artist_id"`
	StartTime time.Time `yaml:"start_time"`
}

type Data struct {
	Venues  []Venue  `yaml:"venues"`
	Artists []Artist `yaml:"artists"`
	Shows   []Show   `yaml:"shows"`
}

// Defaults parses the embedded seed file.
func Defaults() (*Data, error) {
	return Parse(defaults)
}

func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}
	return &data, nil
}
