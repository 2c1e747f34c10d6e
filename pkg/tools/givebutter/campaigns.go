package givebutter

import "net/http"

// campaignOperations covers campaigns plus their nested member and
// team resources. Whether deleting a campaign or a member is a soft
// delete is the remote API's business; the tools describe only the
// HTTP contract.
var campaignOperations = []Operation{
	{
		Name:        "list_campaigns",
		Description: "List all campaigns for the authenticated account",
		Method:      http.MethodGet,
		Path:        "/campaigns",
		Params: []Param{
			{Name: "scope", Kind: KindString, In: InQuery, Description: "Filter campaigns by scope", Enum: []string{"all", "benefiting", "chapters", "owned"}},
		},
	},
	{
		Name:        "get_campaign",
		Description: "Get details of a specific campaign",
		Method:      http.MethodGet,
		Path:        "/campaigns/{campaign_id}",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the campaign"},
		},
	},
	{
		Name:        "create_campaign",
		Description: "Create a new fundraising campaign",
		Method:      http.MethodPost,
		Path:        "/campaigns",
		Params: []Param{
			{Name: "title", Kind: KindString, In: InBody, Required: true, Description: "Title of the campaign"},
			{Name: "description", Kind: KindString, In: InBody, Description: "Description of the campaign"},
			{Name: "goal", Kind: KindInteger, In: InBody, Description: "Fundraising goal amount in cents"},
			{Name: "end_at", Kind: KindDate, In: InBody, Description: "End date of the campaign (ISO-8601)"},
			{Name: "type", Kind: KindString, In: InBody, Description: "Type of the campaign"},
		},
	},
	{
		Name:        "update_campaign",
		Description: "Update an existing campaign. Omitted fields are left unchanged",
		Method:      http.MethodPatch,
		Path:        "/campaigns/{campaign_id}",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the campaign"},
			{Name: "title", Kind: KindString, In: InBody, Description: "New title of the campaign"},
			{Name: "description", Kind: KindString, In: InBody, Description: "New description of the campaign"},
			{Name: "goal", Kind: KindInteger, In: InBody, Description: "New fundraising goal amount in cents"},
			{Name: "end_at", Kind: KindDate, In: InBody, Description: "New end date of the campaign (ISO-8601)"},
		},
	},
	{
		Name:        "delete_campaign",
		Description: "Delete a campaign",
		Method:      http.MethodDelete,
		Path:        "/campaigns/{campaign_id}",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the campaign"},
		},
	},
	{
		Name:        "list_campaign_members",
		Description: "List all members of a campaign",
		Method:      http.MethodGet,
		Path:        "/campaigns/{campaign_id}/members",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the campaign"},
		},
	},
	{
		Name:        "get_campaign_member",
		Description: "Get details of a specific campaign member",
		Method:      http.MethodGet,
		Path:        "/campaigns/{campaign_id}/members/{member_id}",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the campaign"},
			{Name: "member_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the member"},
		},
	},
	{
		Name:        "delete_campaign_member",
		Description: "Remove a member from a campaign",
		Method:      http.MethodDelete,
		Path:        "/campaigns/{campaign_id}/members/{member_id}",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the campaign"},
			{Name: "member_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the member"},
		},
	},
	{
		Name:        "list_campaign_teams",
		Description: "List all teams of a campaign",
		Method:      http.MethodGet,
		Path:        "/campaigns/{campaign_id}/teams",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the campaign"},
		},
	},
	{
		Name:        "get_campaign_team",
		Description: "Get details of a specific campaign team",
		Method:      http.MethodGet,
		Path:        "/campaigns/{campaign_id}/teams/{team_id}",
		Params: []Param{
			{Name: "campaign_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the campaign"},
			{Name: "team_id", Kind: KindInteger, In: InPath, Required: true, Description: "ID of the team"},
		},
	},
}
