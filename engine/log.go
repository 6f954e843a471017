package engine

import "github.com/rs/zerolog"

// LogWorld writes one structured event describing the world: entities, component kinds and system stats
func LogWorld(logger *zerolog.Logger, w *World, level zerolog.Level) {
	kinds := zerolog.Arr()
	for _, kind := range w.store.Kinds() {
		kinds = kinds.Dict(zerolog.Dict().
			Str("kind", kind.String()).
			Int("count", w.store.Len(kind)))
	}

	systems := zerolog.Arr()
	for _, st := range w.systems.Stats() {
		systems = systems.Dict(zerolog.Dict().
			Str("name", st.Name).
			Int64("executions", st.ExecutionCount).
			Dur("avg", st.AvgDuration).
			Dur("max", st.MaxDuration))
	}

	logger.WithLevel(level).
		Str("state", w.state.String()).
		Uint64("tick", w.tick).
		Int("total_entities", w.EntityCount()).
		Array("components", kinds).
		Array("systems", systems).
		Msg("world")
}
