package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/roster/pkg/student"
)

const snapshotKey = "roster.json"

// Cached wraps another source with a diskv-backed snapshot of the last
// successful load. A failed fetch falls back to the snapshot, so transient
// network trouble does not strand the dashboard in the empty state; only
// when both fail does the LoadError reach the UI.
type Cached struct {
	Inner Source
	d     *diskv.Diskv
}

// NewCached builds the snapshot cache at basePath.
func NewCached(inner Source, basePath string) *Cached {
	return &Cached{
		Inner: inner,
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}
}

// Load implements Source.
func (c *Cached) Load(ctx context.Context) ([]student.Student, error) {
	students, err := c.Inner.Load(ctx)
	if err == nil {
		if werr := c.write(students); werr != nil {
			fmt.Fprintf(os.Stderr, "source: snapshot write: %v\n", werr)
		}
		return students, nil
	}

	cached, rerr := c.read()
	if rerr != nil {
		return nil, err // the fetch error is the interesting one
	}
	fmt.Fprintf(os.Stderr, "source: using cached roster after load failure: %v\n", err)
	return cached, nil
}

func (c *Cached) write(students []student.Student) error {
	data, err := json.Marshal(students)
	if err != nil {
		return err
	}
	return c.d.Write(snapshotKey, data)
}

func (c *Cached) read() ([]student.Student, error) {
	data, err := c.d.Read(snapshotKey)
	if err != nil {
		return nil, err
	}
	var students []student.Student
	if err := json.Unmarshal(data, &students); err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, fmt.Errorf("empty snapshot")
	}
	return students, nil
}
