package service

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"zeit/shared/constant"

	"github.com/rs/zerolog/log"
)

// Directories consulted by time.LoadLocation, in the same order. Enumerating
// from the identical source keeps the listed set consistent with what
// IsValid accepts.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

var (
	zonesOnce sync.Once
	zoneNames []string
)

// Zones returns the sorted identifiers of every zone the platform database
// supports. The walk runs once per process.
func (s *serviceImpl) Zones(ctx context.Context) []string {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Zones")
	defer scope.End()

	zonesOnce.Do(func() {
		zoneNames = enumerateZones()
		log.Info().Int("count", len(zoneNames)).Msg("Enumerated platform timezone database")
	})

	scope.SetAttribute("timezone.count", len(zoneNames))

	return zoneNames
}

func enumerateZones() []string {
	dirs := zoneinfoDirs
	if env := os.Getenv("ZONEINFO"); env != "" && !strings.HasSuffix(env, ".zip") {
		dirs = append([]string{env}, dirs...)
	}

	for _, dir := range dirs {
		if names := walkZoneDir(dir); len(names) > 0 {
			return names
		}
	}

	log.Warn().Msg("No zoneinfo directory found, timezone listing will be empty")

	return nil
}

func walkZoneDir(root string) []string {
	var names []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if entry.IsDir() {
			// posix/ and right/ duplicate the whole tree with alternate
			// leap-second handling; they are not part of the canonical set.
			if name == "posix" || name == "right" {
				return filepath.SkipDir
			}

			return nil
		}

		if !isZoneName(name) {
			return nil
		}

		if _, loadErr := time.LoadLocation(name); loadErr != nil {
			return nil
		}

		names = append(names, name)

		return nil
	})
	if err != nil {
		return nil
	}

	sort.Strings(names)

	return names
}

// isZoneName filters database metadata out of the walk. Zone identifiers
// start with an uppercase letter; tab files, leapseconds, and tzdata.zi do
// not.
func isZoneName(name string) bool {
	base := filepath.Base(name)
	if base == "" || base[0] < 'A' || base[0] > 'Z' {
		return false
	}

	switch base {
	case "SECURITY", "README", "Factory":
		return false
	}

	return !strings.Contains(base, ".")
}
