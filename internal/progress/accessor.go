package progress

// Lookup returns the variation record for a (technique, variation)
// pair, or nil when any level of the nesting is absent. It is total:
// a nil map, a missing technique key, or a lesson record without a
// variations map all degrade to nil, never a panic. Aggregation walks
// every curriculum pair through this on each pass, so misses are the
// common case.
func Lookup(data map[string]*LessonProgress, techniqueID, variationID string) *VariationProgress {
	if data == nil {
		return nil
	}
	lesson := data[techniqueID]
	if lesson == nil || lesson.Variations == nil {
		return nil
	}
	return lesson.Variations[variationID]
}
