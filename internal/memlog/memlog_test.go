package memlog_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/smartref/internal/memlog"
)

func TestBuffer(t *testing.T) {

	t.Run("zerolog lines", func(t *testing.T) {
		b := memlog.New(0)
		logger := zerolog.New(b)
		logger.Info().Str("text", "gen").Msg("resolved input")
		logger.Warn().Msg("second")

		entries := b.Get()
		if len(entries) != 2 {
			t.Fatal("expected two entries, got", len(entries))
		}
		if entries[0]["message"] != "resolved input" || entries[0]["text"] != "gen" || entries[0]["level"] != "info" {
			t.Error("unexpected first entry", entries[0])
		}
		if entries[1]["level"] != "warn" {
			t.Error("unexpected second entry", entries[1])
		}
	})

	t.Run("invalid line", func(t *testing.T) {
		b := memlog.New(0)
		if _, err := b.Write([]byte("not json")); err == nil {
			t.Error("no error for invalid line")
		}
		if len(b.Get()) != 0 {
			t.Error("invalid line stored")
		}
	})

	t.Run("bounded", func(t *testing.T) {
		b := memlog.New(3)
		logger := zerolog.New(b)
		for _, msg := range []string{"a", "b", "c", "d", "e"} {
			logger.Info().Msg(msg)
		}
		entries := b.Get()
		if len(entries) != 3 {
			t.Fatal("expected three entries, got", len(entries))
		}
		for i, expected := range []string{"c", "d", "e"} {
			if entries[i]["message"] != expected {
				t.Errorf("entry %d is '%v', expected '%s'", i, entries[i]["message"], expected)
			}
		}
	})

	t.Run("get returns a copy", func(t *testing.T) {
		b := memlog.New(0)
		logger := zerolog.New(b)
		logger.Info().Msg("x")
		entries := b.Get()
		entries[0] = memlog.Entry{"message": "changed"}
		if b.Get()[0]["message"] != "x" {
			t.Error("buffer modified through returned slice")
		}
	})

	t.Run("concurrent writes", func(t *testing.T) {
		b := memlog.New(0)
		logger := zerolog.New(b)
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					logger.Debug().Int("j", j).Msg("concurrent")
				}
			}()
		}
		wg.Wait()
		if len(b.Get()) != 400 {
			t.Error("expected 400 entries, got", len(b.Get()))
		}
	})

}
