package models

// District is a sub-division of a Region.
type District struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Region describes one entry of the regions documents. The service relays the
// documents as raw bytes and never builds these values itself.
type Region struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}
