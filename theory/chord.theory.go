package theory

const (
	majorThird   = 4
	perfectFifth = 7
)

// ChordLookupResult is either Found with the three chord tones or NotFound.
type ChordLookupResult struct {
	Tones [3]PitchClass
	Found bool
}

var NotFound = ChordLookupResult{}

// ResolveChord returns the major triad rooted at name. Names that are not
// canonical pitch classes resolve to NotFound.
func ResolveChord(name string) ChordLookupResult {
	root, err := Index(name)
	if err != nil {
		return NotFound
	}
	return ChordLookupResult{
		Tones: [3]PitchClass{
			chromatic[root],
			Transpose(root, majorThird),
			Transpose(root, perfectFifth),
		},
		Found: true,
	}
}

func (r ChordLookupResult) Set() Set {
	if !r.Found {
		return Set{}
	}
	return NewSet(r.Tones[:]...)
}

// ChordTones unions the tones of every chord that resolves.
func ChordTones(names Set) Set {
	tones := Set{}
	for name := range names {
		res := ResolveChord(name)
		if !res.Found {
			continue
		}
		for _, t := range res.Tones {
			tones[t] = struct{}{}
		}
	}
	return tones
}
