package router

import (
	"fmt"

	"github.com/custodia-labs/launchpad-assist/internal/core/domain"
)

type text = domain.Localized[string]
type texts = domain.Localized[[]string]

// generalPlaybook backs intents whose own actions are too thin.
var generalPlaybook = domain.Playbook{
	Summary: text{
		EN: "We need basic checks to guide the diagnosis.",
		ES: "Necesitamos hacer verificaciones básicas para orientar el diagnóstico.",
	},
	StarterActions: texts{
		EN: []string{
			"Confirm the user's effective business role.",
			"Validate catalog and target mappings.",
			"Review cache/personalization.",
			"Retest with a fresh session.",
		},
		ES: []string{
			"Confirmar rol de negocio efectivo del usuario.",
			"Validar catálogo y mapeos de destino.",
			"Revisar caché/personalización.",
			"Revalidar con sesión nueva.",
		},
	},
	ExtendedActions: texts{
		EN: []string{
			"Confirm whether the issue is global or individual.",
			"Identify the affected system and client.",
			"Run SU53 after reproducing the issue.",
			"Check browser console and network for errors.",
			"Review recent transports or role changes.",
			"Test with a standard theme.",
			"Note the exact error message.",
			"Collect a screenshot of the symptom.",
		},
		ES: []string{
			"Confirmar si el problema es global o individual.",
			"Identificar sistema y cliente afectados.",
			"Ejecutar SU53 tras reproducir el problema.",
			"Revisar consola y red del navegador por errores.",
			"Revisar transportes o cambios de rol recientes.",
			"Probar con un tema estándar.",
			"Anotar el mensaje de error exacto.",
			"Capturar una imagen del síntoma.",
		},
	},
	ClarifyQuestions: texts{
		EN: []string{"Is it a global issue or a single user?", "Which system/client is affected?"},
		ES: []string{"¿Es un problema general o de un usuario?", "¿En qué sistema/cliente ocurre?"},
	},
	EscalationHint: text{
		EN: "Symptom and steps taken.",
		ES: "Síntoma y pasos realizados.",
	},
}

var playbooks = map[domain.Intent]domain.Playbook{
	domain.IntentFLPBlankAfterActivation: {
		Summary: text{
			EN: "Launchpad is blank due to service or UI resource failures.",
			ES: "El Launchpad queda en blanco por fallas en servicios o recursos de interfaz.",
		},
		StarterActions: texts{
			EN: []string{
				"Check browser console and network for load errors.",
				"Verify /UI2 services are active in SICF.",
				"Test with a standard theme and clear cache.",
			},
			ES: []string{
				"Revisar consola del navegador (errores JavaScript).",
				"Revisar Network (401/403/500, recursos UI5/CSS).",
				"Verificar servicios /UI2/* activos en SICF y servicios FLP.",
				"Probar con tema estándar (Quartz/Belize) y limpiar caché/personalización.",
				"Revisar logs relevantes (ST22/SM21 y /IWFND/ERROR_LOG si aplica).",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Look for 401/403/500 responses or UI5/CSS resources failing in Network.",
				"Review ST22/SM21 and /IWFND/ERROR_LOG around the activation time.",
				"Confirm the FLP activation task list (SAP_FIORI_FOUNDATION_S4) completed without errors.",
				"Check that /UI2/FLP and /UI2/FLPD_CUST open for an administrator.",
				"Recalculate the UI5 application index and run /UI2/INVALIDATE_GLOBAL_CACHES.",
				"Confirm the deployed SAPUI5 version matches the FLP release.",
				"Test in a private browser window to rule out extensions.",
				"Check the ICM and web dispatcher logs for blocked requests.",
				"Compare with a system where the Launchpad loads correctly.",
			},
			ES: []string{
				"Confirmar que la lista de tareas de activación del FLP (SAP_FIORI_FOUNDATION_S4) terminó sin errores.",
				"Verificar que /UI2/FLP y /UI2/FLPD_CUST abran con un usuario administrador.",
				"Recalcular el índice de aplicaciones UI5 y ejecutar /UI2/INVALIDATE_GLOBAL_CACHES.",
				"Confirmar que la versión de SAPUI5 desplegada corresponde a la versión del FLP.",
				"Probar en una ventana privada del navegador para descartar extensiones.",
				"Revisar logs del ICM y del web dispatcher por solicitudes bloqueadas.",
				"Comparar con un sistema donde el Launchpad carga correctamente.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Any browser console errors (F12) when opening FLP?",
				"Any 401/403 or UI5 resources failing in Network?",
				"Which theme is active (Quartz/Belize) and did you try a standard one?",
			},
			ES: []string{
				"¿Hay errores en la consola del navegador (F12) al abrir el FLP?",
				"¿En Network ves 401/403 o recursos UI5 que no cargan?",
				"¿Qué tema está activo (Quartz/Belize) y probaste uno estándar?",
			},
		},
		EscalationHint: text{
			EN: "Browser console, network errors, SICF status, and active theme.",
			ES: "Consola del navegador, errores de red, estado SICF y tema activo.",
		},
		GlobalEligible: true,
	},
	domain.IntentUI2ServicesMissing: {
		Summary: text{
			EN: "Launchpad technical services may be inactive or incomplete.",
			ES: "Los servicios técnicos del Launchpad pueden estar inactivos o incompletos.",
		},
		StarterActions: texts{
			EN: []string{
				"Verify /UI2/* services are active in SICF.",
				"Check /UI2/FLP_ACTIVATE_SERVICES or /UI2/ACTIVATE_FLP execution.",
				"Validate system alias and client.",
			},
			ES: []string{
				"Verificar en SICF que /UI2/* estén activos.",
				"Revisar ejecución de /UI2/FLP_ACTIVATE_SERVICES o /UI2/ACTIVATE_FLP.",
				"Validar alias de sistema y cliente.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Review the activation log for services that failed.",
				"Activate /sap/bc/ui2/start_up and /sap/bc/ui5_ui5/ui2/ushell in SICF if inactive.",
				"Confirm the Launchpad OData services are registered in /IWFND/MAINT_SERVICE.",
				"Check that PAGE_BUILDER_PERS and related services are active.",
				"Verify the ICF logon procedure of the UI2 nodes.",
				"Review SM21 for errors during service activation.",
				"Open /sap/bc/ui2/flp directly in the browser.",
				"Confirm the activation ran in the productive client.",
				"Check the authorizations of the user that ran the activation.",
			},
			ES: []string{
				"Revisar el log de activación por servicios con error.",
				"Activar /sap/bc/ui2/start_up y /sap/bc/ui5_ui5/ui2/ushell en SICF si están inactivos.",
				"Confirmar que los servicios OData del Launchpad estén registrados en /IWFND/MAINT_SERVICE.",
				"Verificar que PAGE_BUILDER_PERS y servicios relacionados estén activos.",
				"Verificar el procedimiento de logon ICF de los nodos UI2.",
				"Revisar SM21 por errores durante la activación de servicios.",
				"Abrir /sap/bc/ui2/flp directamente en el navegador.",
				"Confirmar que la activación se ejecutó en el cliente productivo.",
				"Revisar autorizaciones del usuario que ejecutó la activación.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Are /UI2/* services active in SICF (shell/start_up, etc.)?",
				"Was /UI2/FLP_ACTIVATE_SERVICES or /UI2/ACTIVATE_FLP run? Result?",
			},
			ES: []string{
				"¿Existen y están activos en SICF los servicios /UI2/* (shell/start_up, etc.)?",
				"¿Se ejecutó /UI2/FLP_ACTIVATE_SERVICES o /UI2/ACTIVATE_FLP? ¿Con qué resultado?",
			},
		},
		EscalationHint: text{
			EN: "List of inactive UI2 services and activation log.",
			ES: "Listado de servicios UI2 inactivos y log de activación.",
		},
		GlobalEligible: true,
	},
	domain.IntentThemeIssue: {
		Summary: text{
			EN: "The issue appears related to the visual theme.",
			ES: "El problema parece estar relacionado con el tema visual.",
		},
		StarterActions: texts{
			EN: []string{
				"Confirm assigned theme and version.",
				"Switch to a standard theme and clear cache.",
				"Review user personalization.",
			},
			ES: []string{
				"Confirmar tema asignado y versión.",
				"Cambiar a tema estándar y limpiar caché.",
				"Revisar personalización del usuario.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Clear the browser cache and retest.",
				"Compare the issue across browsers.",
				"Check the theme in the Theme Designer for errors.",
				"Republish the custom theme or rebuild it with /UI5/THEME_TOOL.",
				"Confirm the default theme in the Launchpad configuration parameters.",
				"Verify the theme root URL resolves.",
				"Check Network for CSS files that fail to load.",
				"Test with the sap-theme URL parameter set to a standard theme.",
				"Confirm the SAPUI5 version supports the custom theme.",
			},
			ES: []string{
				"Limpiar la caché del navegador y revalidar.",
				"Comparar el problema entre navegadores.",
				"Revisar el tema en Theme Designer por errores.",
				"Republicar el tema personalizado o regenerarlo con /UI5/THEME_TOOL.",
				"Confirmar el tema por defecto en los parámetros de configuración del Launchpad.",
				"Verificar que la URL raíz del tema responda.",
				"Revisar en Network archivos CSS que no cargan.",
				"Probar con el parámetro de URL sap-theme en un tema estándar.",
				"Confirmar que la versión de SAPUI5 soporte el tema personalizado.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Which theme is assigned to the user?",
				"Does the issue disappear with a standard theme?",
			},
			ES: []string{
				"¿Qué tema está asignado al usuario?",
				"¿El problema desaparece al cambiar a un tema estándar?",
			},
		},
		EscalationHint: text{
			EN: "Active theme, affected browser, and a screenshot.",
			ES: "Tema activo, navegador afectado y captura del problema.",
		},
		GlobalEligible: true,
	},
	domain.IntentOData401403: {
		Summary: text{
			EN: "The app is blocked by OData service authorizations.",
			ES: "El 403 en OData suele deberse a autorizaciones faltantes o configuración Gateway/alias.",
		},
		StarterActions: texts{
			EN: []string{
				"Review /IWFND/ERROR_LOG for the service.",
				"Run SU53 or trace for the user.",
				"Validate backend roles and service activation.",
			},
			ES: []string{
				"Revisar /IWFND/ERROR_LOG del servicio.",
				"Ejecutar SU53 o traza para el usuario.",
				"Validar roles backend y activación del servicio.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Check the system alias of the service in /IWFND/MAINT_SERVICE.",
				"Retest the app after adjusting roles.",
				"Check the user exists in the backend system behind the alias.",
				"Review the trusted RFC or SSO configuration to the backend.",
				"Test the service in /IWFND/GW_CLIENT with the same user.",
				"Check the S_SERVICE authorization of the service in SU53.",
				"Review /IWBEP/ERROR_LOG in the backend.",
				"Confirm the ICF node of the OData service is active.",
				"Clear the Gateway metadata cache.",
			},
			ES: []string{
				"Revisar el alias de sistema del servicio en /IWFND/MAINT_SERVICE.",
				"Revalidar la app luego de ajustar roles.",
				"Verificar que el usuario exista en el sistema backend del alias.",
				"Revisar la configuración de RFC de confianza o SSO hacia el backend.",
				"Probar el servicio en /IWFND/GW_CLIENT con el mismo usuario.",
				"Revisar la autorización S_SERVICE del servicio en SU53.",
				"Revisar /IWBEP/ERROR_LOG en el backend.",
				"Confirmar que el nodo ICF del servicio OData esté activo.",
				"Limpiar la caché de metadatos de Gateway.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Which OData service returns 401/403 and at which endpoint?",
				"What appears in /IWFND/ERROR_LOG and SU53?",
			},
			ES: []string{
				"¿Qué servicio OData devuelve 401/403 y en qué endpoint?",
				"¿Qué aparece en /IWFND/ERROR_LOG y en SU53?",
			},
		},
		EscalationHint: text{
			EN: "IWFND error log entry and failed object in SU53.",
			ES: "Entrada de /IWFND/ERROR_LOG y objeto fallido en SU53.",
		},
		GlobalEligible: true,
	},
	domain.IntentTransportIncompleteFiori: {
		Summary: text{
			EN: "The transport may be incomplete or in the wrong client.",
			ES: "El transporte podría estar incompleto o en cliente incorrecto.",
		},
		StarterActions: texts{
			EN: []string{
				"Compare transported objects vs required in STMS.",
				"Confirm import client.",
				"Reimport and regenerate Launchpad content.",
			},
			ES: []string{
				"Comparar objetos transportados vs requeridos en STMS.",
				"Confirmar cliente de importación.",
				"Reimportar y regenerar contenido de Launchpad.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Verify catalog, role and target mappings exist in the target client.",
				"Review the STMS import log for errors.",
				"List the catalog, role and target mapping objects in the transport request.",
				"Check whether client-dependent content needs a separate transport.",
				"Confirm the page and space were included.",
				"Compare the role in PFCG between source and target.",
				"Review the catalog in the Launchpad content manager (/UI2/FLPCM_CONF).",
				"Clear Launchpad caches after the import.",
				"Check transport dependencies and import order.",
			},
			ES: []string{
				"Verificar que catálogo, rol y mapeos de destino existan en el cliente destino.",
				"Revisar el log de importación en STMS.",
				"Listar los objetos de catálogo, rol y mapeo de destino de la orden de transporte.",
				"Revisar si el contenido dependiente de cliente necesita un transporte separado.",
				"Confirmar que la página y el espacio fueron incluidos.",
				"Comparar el rol en PFCG entre origen y destino.",
				"Revisar el catálogo en el gestor de contenido del Launchpad (/UI2/FLPCM_CONF).",
				"Limpiar cachés del Launchpad después de la importación.",
				"Revisar dependencias y orden de importación de los transportes.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Which transport (STMS) and which objects are missing (catalog/role/target mapping)?",
				"Which target system/client is affected?",
			},
			ES: []string{
				"¿Qué transporte (STMS) y qué objetos faltan (catálogo/rol/mapeo de destino)?",
				"¿En qué sistema/cliente destino ocurre?",
			},
		},
		EscalationHint: text{
			EN: "Transport ID, missing object list, and target client.",
			ES: "ID de transporte, lista de objetos faltantes y cliente destino.",
		},
		GlobalEligible: true,
	},
	domain.IntentTransport: {
		Summary: text{
			EN: "Transported content needs verification in target.",
			ES: "El contenido transportado requiere verificación en el destino.",
		},
		StarterActions: texts{
			EN: []string{
				"Confirm STMS import in the correct client.",
				"Verify catalog and role exist in target.",
				"Rebuild Launchpad content if required.",
			},
			ES: []string{
				"Confirmar en STMS el import en el cliente correcto.",
				"Verificar que catálogo y rol existan en destino.",
				"Recalcular contenido de Launchpad si aplica.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Review the import log of the transport.",
				"Clear Launchpad cache in the target system.",
				"Check the transport return code in STMS.",
				"Compare the role in PFCG between source and target.",
				"Confirm the user comparison (PFUD) ran after the import.",
				"Verify spaces and pages arrived with the role.",
				"Check for objects locked in another open transport.",
				"Retest with an affected user in the target client.",
				"Document the transport ID and import time.",
			},
			ES: []string{
				"Revisar el log de importación del transporte.",
				"Limpiar caché de Launchpad en el sistema destino.",
				"Revisar el código de retorno del transporte en STMS.",
				"Comparar el rol en PFCG entre origen y destino.",
				"Confirmar que se ejecutó la comparación de usuarios (PFUD) tras la importación.",
				"Verificar que espacios y páginas llegaron con el rol.",
				"Revisar objetos bloqueados en otro transporte abierto.",
				"Revalidar con un usuario afectado en el cliente destino.",
				"Documentar el ID de transporte y la hora de importación.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{"Which transport moved?", "Which target system/client is affected?"},
			ES: []string{"¿Qué transporte se movió?", "¿En qué sistema/cliente destino ocurre?"},
		},
		EscalationHint: text{
			EN: "Transport ID and import log.",
			ES: "ID de transporte y log de importación.",
		},
	},
	domain.IntentAppsNotVisible: {
		Summary: text{
			EN: "App visibility depends on role, catalog, and space/page.",
			ES: "La visibilidad de apps depende del rol, catálogo y espacio/página.",
		},
		StarterActions: texts{
			EN: []string{
				"Confirm business role includes active space and page.",
				"Validate the catalog has visible target mappings.",
				"Check if the issue is individual or global.",
				"Clear cache/personalization and retest.",
			},
			ES: []string{
				"Confirmar que el rol de negocio incluye espacio y página activos.",
				"Validar que el catálogo tenga mapeos de destino visibles.",
				"Revisar si el caso es individual o global.",
				"Limpiar caché/personalización y revalidar.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Verify the app's target mapping points to the correct system alias.",
				"Confirm the user comparison (PFUD) ran after the role change.",
				"Check the tile and target mapping in the Launchpad app manager.",
				"Validate the role's validity dates for the user in SU01.",
				"Check whether the app is hidden by user personalization.",
				"Run SU53 right after opening the Launchpad.",
				"Confirm the device types of the target mapping (desktop/tablet/phone).",
				"Test with another user that has the same role.",
			},
			ES: []string{
				"Verificar que el mapeo de destino apunte al alias de sistema correcto.",
				"Confirmar que se ejecutó la comparación de usuarios (PFUD) tras el cambio de rol.",
				"Revisar el mosaico y el mapeo de destino en el gestor de apps del Launchpad.",
				"Validar las fechas de validez del rol del usuario en SU01.",
				"Revisar si la app está oculta por personalización del usuario.",
				"Ejecutar SU53 justo después de abrir el Launchpad.",
				"Confirmar los tipos de dispositivo del mapeo de destino (escritorio/tablet/teléfono).",
				"Probar con otro usuario que tenga el mismo rol.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Is it one app or the whole screen?",
				"Does it affect one user or multiple?",
				"Which system/client is affected?",
			},
			ES: []string{
				"¿Es solo una aplicación o toda la pantalla?",
				"¿Ocurre para un solo usuario o varios?",
				"¿En qué sistema/cliente ocurre?",
			},
		},
		EscalationHint: text{
			EN: "Assigned role, expected catalog, and affected user.",
			ES: "Rol asignado, catálogo esperado y usuario afectado.",
		},
	},
	domain.IntentRoleCatalogSpace: {
		Summary: text{
			EN: "The role is assigned but its content does not match expectations.",
			ES: "El rol está asignado pero su contenido no coincide con lo esperado.",
		},
		StarterActions: texts{
			EN: []string{
				"Verify business role content in the client.",
				"Confirm expected catalogs.",
				"Review assigned space/page.",
				"Validate system alias and client.",
			},
			ES: []string{
				"Verificar contenido del rol de negocio en el cliente.",
				"Confirmar catálogos esperados.",
				"Revisar espacio/página asignados.",
				"Validar alias de sistema y cliente.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Compare the role menu in PFCG with the expected catalogs.",
				"Check the role is generated and the user comparison ran.",
				"Confirm the role is assigned with valid dates in SU01.",
				"Check composite roles for the missing single role.",
				"Verify the space is released and the page has sections with tiles.",
				"Review the catalog's tiles and target mappings in the app manager.",
				"Check whether spaces mode or the classic home page is active.",
				"Retest with a fresh session after the role change.",
			},
			ES: []string{
				"Comparar el menú del rol en PFCG con los catálogos esperados.",
				"Verificar que el rol está generado y que se ejecutó la comparación de usuarios.",
				"Confirmar que el rol está asignado con fechas válidas en SU01.",
				"Revisar roles compuestos por el rol individual faltante.",
				"Verificar que el espacio esté liberado y la página tenga secciones con mosaicos.",
				"Revisar mosaicos y mapeos de destino del catálogo en el gestor de apps.",
				"Revisar si está activo el modo de espacios o la página de inicio clásica.",
				"Revalidar con una sesión nueva tras el cambio de rol.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Which business role is assigned?",
				"Which catalog should be visible?",
				"Which client are you testing?",
			},
			ES: []string{
				"¿Qué rol de negocio tiene el usuario?",
				"¿Qué catálogo debería ver?",
				"¿En qué cliente estás probando?",
			},
		},
		EscalationHint: text{
			EN: "Assigned role and expected catalog list.",
			ES: "Rol asignado y lista de catálogos esperados.",
		},
	},
	domain.IntentCacheIndexing: {
		Summary: text{
			EN: "Session or cache may be hiding recent changes.",
			ES: "La sesión o caché puede estar ocultando cambios recientes.",
		},
		StarterActions: texts{
			EN: []string{
				"Retest with a fresh session or user without personalization.",
				"Clear Launchpad cache for user/system.",
				"Revalidate visibility.",
			},
			ES: []string{
				"Probar con sesión nueva o usuario sin personalización.",
				"Limpiar caché de Launchpad del usuario/sistema.",
				"Revalidar visibilidad.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Rebuild the Launchpad content index if changes are still missing.",
				"Run /UI2/INVALIDATE_GLOBAL_CACHES.",
				"Run /UI2/INVALIDATE_CLIENT_CACHES for the affected user.",
				"Recalculate the SAPUI5 application index with /UI5/APP_INDEX_CALCULATE.",
				"Clear the browser cache or test in a private window.",
				"Reset the user's Launchpad personalization.",
				"Check the scheduled cache jobs ran after the change.",
				"Compare with a user who never opened the Launchpad.",
				"Wait for the content propagation interval and retest.",
			},
			ES: []string{
				"Regenerar el índice de contenido de Launchpad si siguen faltando cambios.",
				"Ejecutar /UI2/INVALIDATE_GLOBAL_CACHES.",
				"Ejecutar /UI2/INVALIDATE_CLIENT_CACHES para el usuario afectado.",
				"Recalcular el índice de aplicaciones SAPUI5 con /UI5/APP_INDEX_CALCULATE.",
				"Limpiar la caché del navegador o probar en ventana privada.",
				"Restablecer la personalización del Launchpad del usuario.",
				"Verificar que los jobs programados de caché se ejecutaron tras el cambio.",
				"Comparar con un usuario que nunca abrió el Launchpad.",
				"Esperar el intervalo de propagación del contenido y revalidar.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Does it disappear after a fresh login?",
				"Does it affect all users or just some?",
			},
			ES: []string{
				"¿El problema desaparece al iniciar sesión de nuevo?",
				"¿Ocurre para todos o solo algunos usuarios?",
			},
		},
		EscalationHint: text{
			EN: "Affected user and cache/personalization evidence.",
			ES: "Usuario afectado y evidencia de caché/personalización.",
		},
	},
	domain.IntentAuthorization: {
		Summary: text{
			EN: "Authorizations are missing for the app or service.",
			ES: "Faltan autorizaciones para acceder a la aplicación o servicio.",
		},
		StarterActions: texts{
			EN: []string{
				"Run SU53 or authorization trace.",
				"Adjust missing authorization objects.",
				"Revalidate access.",
			},
			ES: []string{
				"Ejecutar SU53 o traza de autorización.",
				"Ajustar objetos/autorizaciones faltantes.",
				"Revalidar acceso.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Check the failed authorization object and field values in SU53.",
				"Record an STAUTHTRACE trace while reproducing the issue.",
				"Check S_SERVICE and S_RFC for the app's services.",
				"Confirm the role with the missing object is assigned and generated.",
				"Run the user comparison (PFUD) after adjusting roles.",
				"Check backend authorizations when the app calls another system.",
				"Ask security to review the change with the trace evidence.",
				"Confirm the user is not locked and has a valid user type.",
				"Document the granted authorization for audit.",
			},
			ES: []string{
				"Revisar el objeto de autorización fallido y sus valores en SU53.",
				"Registrar una traza STAUTHTRACE mientras se reproduce el problema.",
				"Revisar S_SERVICE y S_RFC para los servicios de la app.",
				"Confirmar que el rol con el objeto faltante esté asignado y generado.",
				"Ejecutar la comparación de usuarios (PFUD) tras ajustar roles.",
				"Revisar autorizaciones en el backend cuando la app llama a otro sistema.",
				"Solicitar a seguridad la revisión del cambio con la evidencia de la traza.",
				"Confirmar que el usuario no esté bloqueado y tenga un tipo de usuario válido.",
				"Documentar la autorización otorgada para auditoría.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Which app shows the error?",
				"Does the system show an authorization error?",
			},
			ES: []string{
				"¿En qué aplicación ocurre el error?",
				"¿El sistema muestra un mensaje de autorización?",
			},
		},
		EscalationHint: text{
			EN: "Failed object in SU53 and assigned role.",
			ES: "Objeto fallido en SU53 y rol asignado.",
		},
	},
	domain.IntentClarify: {
		Summary: text{
			EN: "More details are needed to continue.",
			ES: "Faltan datos para continuar el diagnóstico.",
		},
		StarterActions: texts{
			EN: []string{
				"Confirm whether the issue is global or individual.",
				"Identify affected system and client.",
				"Review recent changes.",
			},
			ES: []string{
				"Confirmar si el problema es global o individual.",
				"Identificar sistema y cliente afectados.",
				"Revisar si hay cambios recientes.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Collect a screenshot of the symptom.",
				"Note the exact error message.",
				"Identify the affected app or tile.",
				"Record when the issue started.",
				"Confirm the browser and version used.",
				"Retest with a fresh session.",
				"Check the user's business roles.",
				"Note the Launchpad URL used.",
				"Run SU53 after reproducing the issue.",
			},
			ES: []string{
				"Capturar una imagen del síntoma.",
				"Anotar el mensaje de error exacto.",
				"Identificar la app o mosaico afectado.",
				"Registrar cuándo comenzó el problema.",
				"Confirmar navegador y versión utilizados.",
				"Revalidar con una sesión nueva.",
				"Revisar los roles de negocio del usuario.",
				"Anotar la URL del Launchpad utilizada.",
				"Ejecutar SU53 tras reproducir el problema.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Is the whole screen missing or only one app?",
				"Does it affect all users?",
				"Which system/client is affected?",
			},
			ES: []string{
				"¿Falta toda la pantalla o solo una aplicación?",
				"¿Ocurre para todos los usuarios?",
				"¿En qué sistema/cliente ocurre?",
			},
		},
		EscalationHint: text{
			EN: "User, system, and client details.",
			ES: "Datos de usuario, sistema y cliente.",
		},
	},
	domain.IntentOther: {
		Summary: text{
			EN: "We need basic checks to identify the cause.",
			ES: "Necesitamos identificar la causa con verificaciones básicas.",
		},
		StarterActions: texts{
			EN: []string{
				"Confirm effective business role.",
				"Validate catalog and target mappings.",
				"Review cache/personalization.",
			},
			ES: []string{
				"Confirmar rol de negocio efectivo del usuario.",
				"Validar catálogo y mapeos de destino.",
				"Revisar caché/personalización.",
			},
		},
		ExtendedActions: texts{
			EN: []string{
				"Retest with a fresh session.",
				"Identify the affected app or tile.",
				"Note the exact error message.",
				"Run SU53 after reproducing the issue.",
				"Check browser console and network for errors.",
				"Confirm whether the issue is global or individual.",
				"Review recent transports or role changes.",
				"Test with a standard theme.",
				"Collect a screenshot of the symptom.",
			},
			ES: []string{
				"Revalidar con una sesión nueva.",
				"Identificar la app o mosaico afectado.",
				"Anotar el mensaje de error exacto.",
				"Ejecutar SU53 tras reproducir el problema.",
				"Revisar consola y red del navegador por errores.",
				"Confirmar si el problema es global o individual.",
				"Revisar transportes o cambios de rol recientes.",
				"Probar con un tema estándar.",
				"Capturar una imagen del síntoma.",
			},
		},
		ClarifyQuestions: texts{
			EN: []string{
				"Which app is affected?",
				"Does it affect all users or just one?",
				"Which system/client is affected?",
			},
			ES: []string{
				"¿Qué aplicación está afectada?",
				"¿Ocurre para todos los usuarios o solo uno?",
				"¿En qué sistema/cliente ocurre?",
			},
		},
		EscalationHint: text{
			EN: "Assigned role and exact symptom.",
			ES: "Rol asignado y síntoma exacto.",
		},
	},
}

// citationFiles allow-lists the documents each intent may cite.
var citationFiles = map[domain.Intent][]string{
	domain.IntentAppsNotVisible: {
		"apps-not-visible-checklist.md",
		"roles-catalogs-spaces.md",
		"cache-indexing.md",
	},
	domain.IntentRoleCatalogSpace:         {"roles-catalogs-spaces.md", "role-assignment.md"},
	domain.IntentCacheIndexing:            {"cache-indexing.md"},
	domain.IntentTransport:                {"launchpad-content-transport.md"},
	domain.IntentAuthorization:            {"authorization-checks.md", "request-info-basis-security.md"},
	domain.IntentFLPBlankAfterActivation:  {"flp-blank-page-after-activation.md"},
	domain.IntentUI2ServicesMissing:       {"ui2-services-missing.md"},
	domain.IntentThemeIssue:               {"launchpad-theme-issues.md"},
	domain.IntentOData401403:              {"odata-401-403-troubleshooting.md", "authorization-checks.md"},
	domain.IntentTransportIncompleteFiori: {"transport-incomplete-fiori.md"},
	domain.IntentClarify:                  {"troubleshooting-overview.md"},
	domain.IntentOther:                    {"troubleshooting-overview.md"},
}

func init() {
	if err := checkRegistry(playbooks, citationFiles); err != nil {
		panic(err)
	}
}

// checkRegistry verifies every intent has a playbook and a citation allow-list.
func checkRegistry(pbs map[domain.Intent]domain.Playbook, files map[domain.Intent][]string) error {
	for _, intent := range domain.AllIntents() {
		pb, ok := pbs[intent]
		if !ok {
			return fmt.Errorf("router: no playbook for intent %s", intent)
		}
		if len(pb.StarterActions.EN) == 0 || len(pb.StarterActions.ES) == 0 {
			return fmt.Errorf("router: playbook %s has no starter actions", intent)
		}
		if err := checkStepPool(string(intent), pb); err != nil {
			return err
		}
		if len(files[intent]) == 0 {
			return fmt.Errorf("router: no citation files for intent %s", intent)
		}
	}
	if len(pbs) != len(domain.AllIntents()) {
		return fmt.Errorf("router: playbook registry has %d entries for %d intents", len(pbs), len(domain.AllIntents()))
	}
	return checkStepPool("general", generalPlaybook)
}

// checkStepPool verifies pb can answer any requested count up to MaxStepsLimit.
func checkStepPool(name string, pb domain.Playbook) error {
	for _, locale := range []domain.Locale{domain.LocaleEN, domain.LocaleES} {
		if n := len(stepPool(pb, locale)); n < MaxStepsLimit {
			return fmt.Errorf("router: playbook %s has %d distinct %s actions, need %d", name, n, locale, MaxStepsLimit)
		}
	}
	return nil
}

// PlaybookFor returns the playbook of intent. Every valid intent has one;
// anything else gets the general playbook.
func PlaybookFor(intent domain.Intent) domain.Playbook {
	if pb, ok := playbooks[intent]; ok {
		return pb
	}
	return generalPlaybook
}

// GeneralPlaybook returns the fallback playbook.
func GeneralPlaybook() domain.Playbook {
	return generalPlaybook
}

// CitationFiles returns the documents intent may cite, in priority order.
func CitationFiles(intent domain.Intent) []string {
	if files, ok := citationFiles[intent]; ok {
		return append([]string(nil), files...)
	}
	return append([]string(nil), citationFiles[domain.IntentOther]...)
}
