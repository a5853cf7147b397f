package studyblog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDate is returned when a seed post date is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid post date")

const dateLayout = "2006-01-02"

type seedFile struct {
	Posts []seedPost `yaml:"posts"`
}

type seedPost struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Summary  string   `yaml:"summary"`
	Author   string   `yaml:"author"`
	Date     string   `yaml:"date"`
	Tags     []string `yaml:"tags"`
	ReadTime int      `yaml:"read_time"`
	Content  string   `yaml:"content"`
}

// LoadSeed decodes a YAML seed document and builds a Store from it.
func LoadSeed(r io.Reader) (*Store, error) {
	var f seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	posts := make([]Post, 0, len(f.Posts))
	for _, sp := range f.Posts {
		date, err := time.Parse(dateLayout, sp.Date)
		if err != nil {
			return nil, fmt.Errorf("post %q: %w: %q", sp.ID, ErrInvalidDate, sp.Date)
		}
		posts = append(posts, Post{
			ID:       sp.ID,
			Title:    sp.Title,
			Summary:  sp.Summary,
			Content:  sp.Content,
			Author:   sp.Author,
			Date:     date,
			Tags:     sp.Tags,
			ReadTime: sp.ReadTime,
		})
	}
	store, err := NewStore(posts)
	if err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}
	return store, nil
}

// DefaultStore loads the sample posts embedded in the binary.
func DefaultStore() (*Store, error) {
	return LoadSeed(bytes.NewReader(SeedPosts))
}
