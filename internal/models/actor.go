package models

// ActorKind discriminates the two account types that can authenticate.
type ActorKind string

const (
	ActorCustomer   ActorKind = "customer"
	ActorRestaurant ActorKind = "restaurant"
)

// Actor identifies the authenticated caller for a request. Exactly one of
// CustomerID or RestaurantID is meaningful, selected by Kind.
type Actor struct {
	Kind         ActorKind `json:"kind"`
	CustomerID   uint      `json:"customer_id,omitempty"`
	RestaurantID uint      `json:"restaurant_id,omitempty"`
}

func CustomerActor(id uint) Actor {
	return Actor{Kind: ActorCustomer, CustomerID: id}
}

func RestaurantActor(id uint) Actor {
	return Actor{Kind: ActorRestaurant, RestaurantID: id}
}

func (a Actor) IsCustomer() bool {
	return a.Kind == ActorCustomer
}

func (a Actor) IsRestaurant() bool {
	return a.Kind == ActorRestaurant
}
