package camera

// CameraID tags the camera variant the game has activated. The values are a
// fixed binary contract with the targeted host build.
type CameraID uint32

const (
	IDNormal CameraID = 0
	IDSprint CameraID = 3

	IDCombat CameraID = 83

	IDBaseHub       CameraID = 85
	IDBaseHubSprint CameraID = 86

	IDLivingQuarters  CameraID = 118
	IDPrivateQuarters CameraID = 119
	IDPrivateSuite    CameraID = 120

	// IDSurveyorSet is the photo/inspection mode camera; its native framing
	// is never touched.
	IDSurveyorSet CameraID = 147

	IDSeliana          CameraID = 252
	IDSelianaSprint    CameraID = 253
	IDSelianaHub       CameraID = 254
	IDSelianaHubSprint CameraID = 255
	IDSelianaRoom      CameraID = 256
)

var (
	hubIDs = []CameraID{
		IDBaseHub,
		IDBaseHubSprint,
		IDSeliana,
		IDSelianaSprint,
		IDSelianaHub,
		IDSelianaHubSprint,
	}
	roomIDs = []CameraID{
		IDLivingQuarters,
		IDPrivateQuarters,
		IDPrivateSuite,
		IDSelianaRoom,
	}
	questIDs = []CameraID{
		IDNormal,
		IDSprint,
		IDCombat,
	}
)

// contextByID is populated hub first, room second, quest last, so on an
// overlap the later insert wins: priority is hub < room < quest. The sets
// are disjoint today, which keeps this unobservable, but any extension must
// keep quest highest.
var contextByID = buildContextTable()

func buildContextTable() map[CameraID]Context {
	table := make(map[CameraID]Context, len(hubIDs)+len(roomIDs)+len(questIDs))
	for _, id := range hubIDs {
		table[id] = ContextHub
	}
	for _, id := range roomIDs {
		table[id] = ContextRoom
	}
	for _, id := range questIDs {
		table[id] = ContextQuest
	}
	return table
}
