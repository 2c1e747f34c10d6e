package givebutter

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/openfundraise/mcp-server-givebutter/core"
)

var wantOperations = []string{
	"list_campaigns", "get_campaign", "create_campaign", "update_campaign", "delete_campaign",
	"list_campaign_members", "get_campaign_member", "delete_campaign_member",
	"list_campaign_teams", "get_campaign_team",
	"list_contacts", "get_contact", "create_contact", "update_contact", "delete_contact", "restore_contact",
	"list_transactions", "get_transaction",
	"list_tickets", "get_ticket",
	"list_payouts", "get_payout",
	"list_plans", "get_plan",
	"list_funds", "get_fund",
}

func TestProvider(t *testing.T) {
	Convey("Given a new provider", t, func() {
		provider := NewProvider()

		Convey("It exposes exactly the declared operations", func() {
			So(len(provider.Tools), ShouldEqual, len(wantOperations))
			for _, name := range wantOperations {
				So(provider.Tools, ShouldContainKey, name)
			}
		})

		Convey("Every tool satisfies core.Tool and matches its registry name", func() {
			for name, tool := range provider.Tools {
				So(tool, ShouldImplement, (*core.Tool)(nil))
				So(tool.Handle().Name, ShouldEqual, name)
				So(tool.Handle().Description, ShouldNotBeEmpty)
			}
		})
	})
}

func TestOperationsAreWellFormed(t *testing.T) {
	Convey("Given every declared operation", t, func() {
		for _, op := range Operations() {
			Convey("Operation "+op.Name+" is internally consistent", func() {
				So(op.Method, ShouldBeIn, "GET", "POST", "PATCH", "DELETE")
				So(op.Path, ShouldStartWith, "/")

				for _, p := range op.Params {
					if p.In == InPath {
						So(p.Required, ShouldBeTrue)
						So(p.Kind, ShouldEqual, KindInteger)
						So(op.Path, ShouldContainSubstring, "{"+p.Name+"}")
					}
					if p.In == InBody {
						So(op.Method, ShouldBeIn, "POST", "PATCH", "PUT")
					}
				}
			})
		}
	})
}
