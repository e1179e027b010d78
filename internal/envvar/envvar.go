package envvar

const (
	// BaseModelEnv is the environment variable used to determine the environment
	BaseModelEnv = "BASEMODEL_ENV"

	// BaseModelConfigPath is the environment variable used to locate the manifest file
	BaseModelConfigPath = "BASEMODEL_CONFIG_PATH"

	// BaseModelModelsPath is the environment variable used to locate the models directory
	BaseModelModelsPath = "BASEMODEL_MODELS_PATH"
)
