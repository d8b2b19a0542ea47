package directory

import "fioparser/core/reconcile"

// apiContact is a contact as returned by /api/v4/contacts.
type apiContact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt int64  `json:"created_at"`
}

type apiLink struct {
	Href string `json:"href"`
}

type contactsPage struct {
	Page  int `json:"_page"`
	Links struct {
		Next *apiLink `json:"next"`
	} `json:"_links"`
	Embedded struct {
		Contacts []apiContact `json:"contacts"`
	} `json:"_embedded"`
}

type updateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (c apiContact) toContact() reconcile.Contact {
	return reconcile.Contact{
		ID:        c.ID,
		Name:      c.Name,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}
