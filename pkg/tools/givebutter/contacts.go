package givebutter

import "net/http"

// contactOperations covers the contact family. Deleting a contact is
// an archive on the Givebutter side, reversed through the dedicated
// /restore sub-path with PATCH. That asymmetry is the remote API's
// actual contract and is kept as-is.
var contactOperations = []Operation{
	{
		Name:        "list_contacts",
		Description: "List all contacts for the authenticated account",
		Method:      http.MethodGet,
		Path:        "/contacts",
		Params: []Param{
			{Name: "scope", Kind: KindString, In: InQuery, Description: "Filter contacts by scope", Enum: []string{"all", "archived"}},
		},
	},
	{
		Name:        "get_contact",
		Description: "Get details of a specific contact",
		Method:      http.MethodGet,
		Path:        "/contacts/{contact_id}",
		Params: []Param{
			{Name: "contact_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the contact"},
		},
	},
	{
		Name:        "create_contact",
		Description: "Create a new contact",
		Method:      http.MethodPost,
		Path:        "/contacts",
		Params: []Param{
			{Name: "first_name", Kind: KindString, In: InBody, Required: true, Description: "First name of the contact"},
			{Name: "last_name", Kind: KindString, In: InBody, Required: true, Description: "Last name of the contact"},
			{Name: "email", Kind: KindString, In: InBody, Description: "Email address of the contact"},
			{Name: "phone", Kind: KindString, In: InBody, Description: "Phone number of the contact"},
			{Name: "note", Kind: KindString, In: InBody, Description: "Note to attach to the contact"},
		},
	},
	{
		Name:        "update_contact",
		Description: "Update an existing contact. Omitted fields are left unchanged",
		Method:      http.MethodPatch,
		Path:        "/contacts/{contact_id}",
		Params: []Param{
			{Name: "contact_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the contact"},
			{Name: "first_name", Kind: KindString, In: InBody, Description: "New first name of the contact"},
			{Name: "last_name", Kind: KindString, In: InBody, Description: "New last name of the contact"},
			{Name: "email", Kind: KindString, In: InBody, Description: "New email address of the contact"},
			{Name: "phone", Kind: KindString, In: InBody, Description: "New phone number of the contact"},
			{Name: "note", Kind: KindString, In: InBody, Description: "New note for the contact"},
		},
	},
	{
		Name:        "delete_contact",
		Description: "Archive a contact. The contact is not removed and can be restored with restore_contact",
		Method:      http.MethodDelete,
		Path:        "/contacts/{contact_id}",
		Params: []Param{
			{Name: "contact_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the contact"},
		},
	},
	{
		Name:        "restore_contact",
		Description: "Restore an archived contact",
		Method:      http.MethodPatch,
		Path:        "/contacts/{contact_id}/restore",
		Params: []Param{
			{Name: "contact_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the contact"},
		},
	},
}
