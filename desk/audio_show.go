package desk

import (
	"github.com/charmbracelet/log"

	"github.com/showdesk/showdesk/audio"
)

// AudioGo fires the track at the playlist cursor and advances the
// cursor, wrapping at the end of the list. A track marked Continue pulls
// the next track in with it; chained Continues cascade, bounded by one
// pass over the list.
func AudioGo(s *State) {
	if len(s.Tracks) == 0 || s.Audio == nil {
		return
	}
	for range s.Tracks {
		track := s.Tracks[s.AudioIndex]
		s.AudioIndex = (s.AudioIndex + 1) % len(s.Tracks)
		if err := s.Audio.Play(track, s.MasterVolume); err != nil {
			log.Error("Failed to start track", "track", track.ID, "error", err)
			return
		}
		log.Info("Started track", "track", track.ID, "name", track.Name)
		if track.Action != audio.ActionContinue {
			return
		}
	}
}

// AudioBack steps the playlist cursor one track back, wrapping at the
// front, and stops whatever is playing. The previous track is armed, not
// started; the next Go fires it.
func AudioBack(s *State) {
	if len(s.Tracks) == 0 {
		return
	}
	if s.Audio != nil {
		s.Audio.StopAll()
	}
	s.AudioIndex = (s.AudioIndex - 1 + len(s.Tracks)) % len(s.Tracks)
}

// AdvanceEnded drains the engine's ended queue and fires the follow-on
// track for every ended track marked Follow. Each ended track is
// reported by the engine exactly once, so a Follow fires exactly once no
// matter how many ticks pass.
func AdvanceEnded(s *State) {
	if s.Audio == nil {
		return
	}
	for _, ended := range s.Audio.EndedTracks() {
		log.Debug("Track finished", "track", ended.TrackID)
		if ended.Action == audio.ActionFollow {
			AudioGo(s)
		}
	}
}
