package errors

// User-facing messages
const (
	MsgSessionExpired     = "Su sesión ha expirado. Por favor, vuelva a iniciar sesión."
	MsgUnauthenticated    = "Debe iniciar sesión para continuar."
	MsgLoginFailed        = "Error al iniciar sesión"
	MsgInvalidForm        = "Por favor, corrija los errores en el formulario"
	MsgNotFound           = "El recurso solicitado no existe."
	MsgOwnerNotFound      = "Propietario no encontrado. Complete los datos para registrarlo."
	MsgPropertyNotFound   = "Propiedad no encontrada."
	MsgUserNotFound       = "Usuario no encontrado."
	MsgServiceUnavailable = "No se pudo contactar al servidor. Intente nuevamente en unos minutos."
	MsgRateLimited        = "Demasiadas solicitudes. Espere un momento e intente nuevamente."
	MsgInvalidParameters  = "Los parámetros enviados no son válidos."
	MsgInternalError      = "Ocurrió un error inesperado. Intente nuevamente más tarde."
	MsgRequestRejected    = "El servidor rechazó la solicitud."
)
