package model

// Actor is a performer credited on films through the film_actor link
// table.
//
// Fields:
//  ActorID    – primary key identifier.
//  FirstName  – given name.
//  LastName   – family name.
//  LastUpdate – row timestamp formatted "YYYY-MM-DD HH:MM:SS" (UTC).
type Actor struct {
	ActorID    uint64 `json:"actor_id"`    // actor.actor_id
	FirstName  string `json:"first_name"`  // actor.first_name
	LastName   string `json:"last_name"`   // actor.last_name
	LastUpdate string `json:"last_update"` // actor.last_update
}
