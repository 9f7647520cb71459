package workout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/faizmokh/makan/internal/ledger"
)

// ParseSpec reads an exercise written as name[:SETSxREPS[@LBS]][:difficulty],
// for example "Squat:3x5@135:hard". Omitted parts keep the NewExercise defaults.
// Fields are taken from the right, so a name may itself contain ':' as long as
// none of its segments reads as a volume.
func ParseSpec(spec string) (ledger.Exercise, error) {
	parts := strings.Split(spec, ":")
	n := len(parts)

	difficulty := ledger.DifficultyModerate
	if n > 1 && !isVolume(parts[n-1]) {
		parsed, err := ledger.ParseDifficulty(parts[n-1])
		if err == nil {
			difficulty = parsed
			n--
		} else if isVolumeSegment(parts[n-2]) {
			return ledger.Exercise{}, fmt.Errorf("exercise %q: %w", spec, err)
		}
	}

	volume := ""
	if n > 1 && isVolume(parts[n-1]) {
		volume = strings.TrimSpace(parts[n-1])
		n--
	}

	for _, segment := range parts[1:n] {
		if isVolumeSegment(segment) {
			return ledger.Exercise{}, fmt.Errorf("exercise %q: unexpected fields after %q", spec, strings.TrimSpace(segment))
		}
	}

	ex := NewExercise(strings.Join(parts[:n], ":"))
	if ex.Name == "" {
		return ledger.Exercise{}, fmt.Errorf("exercise %q: name is required", spec)
	}
	if volume != "" {
		if err := parseVolume(&ex, volume); err != nil {
			return ledger.Exercise{}, fmt.Errorf("exercise %q: %w", spec, err)
		}
	}
	ex.Difficulty = difficulty
	return ex, nil
}

// FormatSpec is the inverse of ParseSpec. It always writes the volume and
// difficulty, so a ':' in the name reads back as part of the name.
func FormatSpec(ex ledger.Exercise) string {
	spec := fmt.Sprintf("%s:%dx%d", ex.Name, ex.Sets, ex.Reps)
	if ex.LoadLbs > 0 {
		spec += "@" + strconv.FormatFloat(ex.LoadLbs, 'f', -1, 64)
	}
	return spec + ":" + string(ex.Difficulty)
}

// isVolumeSegment reports whether value is a complete, valid volume.
func isVolumeSegment(value string) bool {
	if !isVolume(value) {
		return false
	}
	var ex ledger.Exercise
	return parseVolume(&ex, strings.TrimSpace(value)) == nil
}

func isVolume(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return value[0] == '@' || (value[0] >= '0' && value[0] <= '9')
}

func parseVolume(ex *ledger.Exercise, value string) error {
	volume, load, hasLoad := strings.Cut(value, "@")
	if hasLoad {
		lbs, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(load, "lbs")), 64)
		if err != nil {
			return fmt.Errorf("parse load: %w", err)
		}
		ex.LoadLbs = lbs
	}
	if volume == "" {
		return nil
	}
	sets, reps, ok := strings.Cut(strings.ToLower(volume), "x")
	if !ok {
		return fmt.Errorf("volume %q must look like SETSxREPS", volume)
	}
	var err error
	if ex.Sets, err = strconv.Atoi(strings.TrimSpace(sets)); err != nil {
		return fmt.Errorf("parse sets: %w", err)
	}
	if ex.Reps, err = strconv.Atoi(strings.TrimSpace(reps)); err != nil {
		return fmt.Errorf("parse reps: %w", err)
	}
	return nil
}
