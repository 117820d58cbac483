package schema

import "fmt"

// Answer scale labels, lowest first
var ScaleKeys = []string{
	"scale.never",
	"scale.rarely",
	"scale.sometimes",
	"scale.often",
	"scale.very_often",
}

// QuestionKey returns the localization key of the i-th (0 based) item of a
// questionnaire
func QuestionKey(questionnaire string, i int) string {
	return fmt.Sprintf("%s.q%d", questionnaire, i+1)
}

type ChallengeType string

const (
	ChallengeRun      ChallengeType = "run"
	ChallengeJumpRope ChallengeType = "jump_rope"
	ChallengePushUp   ChallengeType = "push_up"
	ChallengePlank    ChallengeType = "plank"
	ChallengeStairs   ChallengeType = "stairs"
	ChallengeWalk     ChallengeType = "walk"
	ChallengeSquat    ChallengeType = "squat"
	ChallengeYoga     ChallengeType = "yoga"
	ChallengeCycling  ChallengeType = "cycling"
	ChallengeReading  ChallengeType = "reading"
	ChallengeMeditate ChallengeType = "meditate"
)

var Challenges = []ChallengeType{
	ChallengeRun,
	ChallengeJumpRope,
	ChallengePushUp,
	ChallengePlank,
	ChallengeStairs,
	ChallengeWalk,
	ChallengeSquat,
	ChallengeYoga,
	ChallengeCycling,
	ChallengeReading,
	ChallengeMeditate,
}

type Stretch struct {
	ID       int    `json:"id"`
	Key      string `json:"-"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
}

var Stretches = []Stretch{
	{1, "mountain_pose", "Mountain Pose", "/yoga/mountain-pose.jpg", "https://www.youtube.com/embed/2HTvZp5rPrg"},
	{2, "child_pose", "Child Pose", "/yoga/child-pose.jpg", "https://www.youtube.com/embed/2MjFCE0O1kk"},
	{3, "cat_cow", "Cat-Cow Stretch", "/yoga/cat-cow.jpg", "https://www.youtube.com/embed/kqnua4rHVVA"},
	{4, "seated_twist", "Seated Twist", "/yoga/seated-twist.jpg", "https://www.youtube.com/embed/lzRkeMuwl0s"},
	{5, "downward_dog", "Downward Dog", "/yoga/downward-dog.jpg", "https://www.youtube.com/embed/0FxItjCzxks"},
}

type AudioTrack struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	FileURL  string `json:"file_url"`
	ImageURL string `json:"image_url,omitempty"`
}

var AudioTracks = []AudioTrack{
	{1, "Aylex-meditation", "/audio/Aylex-Meditation.mp3", "/images/relax/relax-1.jpeg"},
	{2, "Pufino-Thoughtful", "/audio/Pufino-Thoughtful.mp3", "/images/relax/relax-2.jpeg"},
	{3, "Yellow-flower", "/audio/Yellow-flower.mp3", "/images/relax/relax-3.jpeg"},
}

const (
	SelfCarePlannerFile = "self-care-challenge-7-days.pdf"
	SelfCareTips        = 7
)
