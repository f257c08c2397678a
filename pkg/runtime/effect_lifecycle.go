package runtime

// ReconcileEffects implements spec §4.7: after expansion computes the set
// of live component identities, spawn effects for newly-present
// identities and cancel handles for identities no longer present.
//
// live is this frame's set of live identities; newEffects maps identities
// to the effects their Effects(ctx) call returned this frame (the caller
// only needs to call Effects() for
// identities not already tracked; re-supplying an already-tracked
// identity is a no-op here since effects are spawned once per mount, not
// once per frame).
func (rt *Runtime) ReconcileEffects(live map[Identity]bool, newEffects map[Identity][]Effect) {
	rt.effectsMu.Lock()
	defer rt.effectsMu.Unlock()

	// Cancel handles for identities no longer present.
	for id, handles := range rt.effects {
		if live[id] {
			continue
		}
		for _, h := range handles {
			h.cancelNow()
		}
		delete(rt.effects, id)
		rt.store.Drop(id)
	}

	// Spawn effects for newly-present identities.
	for id, effs := range newEffects {
		if _, tracked := rt.effects[id]; tracked {
			continue
		}
		if len(effs) == 0 {
			continue
		}
		handles := make([]*effectHandle, 0, len(effs))
		for i, e := range effs {
			handles = append(handles, rt.runEffect(id, i, e))
		}
		rt.effects[id] = handles
	}

	rt.seen = live
}

// LiveIdentities returns the identity set tracked as of the last
// ReconcileEffects call.
func (rt *Runtime) LiveIdentities() map[Identity]bool {
	rt.effectsMu.Lock()
	defer rt.effectsMu.Unlock()
	out := make(map[Identity]bool, len(rt.seen))
	for id := range rt.seen {
		out[id] = true
	}
	return out
}

// WasLive reports whether id was part of the previous frame's live set,
// used to determine a component's IsFirstRender() status.
func (rt *Runtime) WasLive(id Identity) bool {
	rt.effectsMu.Lock()
	defer rt.effectsMu.Unlock()
	return rt.seen[id]
}

// HasEffects reports whether identity id already has tracked effect
// handles. (The expansion pass decides whether to call Effects() from
// WasLive, not from this.)
func (rt *Runtime) HasEffects(id Identity) bool {
	rt.effectsMu.Lock()
	defer rt.effectsMu.Unlock()
	_, ok := rt.effects[id]
	return ok
}
