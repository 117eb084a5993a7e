package scenes

// SceneChanger lets a scene hand control to another scene
type SceneChanger interface {
	ChangeScene(scene interface{})
}
