package catalog

var personalSkills = []SkillDefinition{
	{ID: "medicina", Name: "Medicina", Description: "Tratar heridas, infecciones, estabilizar."},
	{ID: "supervivencia", Name: "Supervivencia", Description: "Hacer fuego, construir refugios, rastrear."},
	{ID: "mecanica", Name: "Mecánica", Description: "Reparar vehículos o maquinaria simple."},
	{ID: "tecnologia", Name: "Tecnología", Description: "Hackear, arreglar radios, usar computadoras."},
	{ID: "persuasion", Name: "Persuasión", Description: "Convencer a otros, negociar, calmar."},
	{ID: "intimidacion", Name: "Intimidación", Description: "Amenazar, causar miedo o imponerse."},
	{ID: "sigilo", Name: "Sigilo", Description: "Moverse sin ser visto ni oído."},
	{ID: "observacion", Name: "Observación", Description: "Percibir detalles ocultos o peligros."},
	{ID: "atletismo", Name: "Atletismo", Description: "Correr, escalar, nadar, saltar."},
	{ID: "armas_fuego", Name: "Armas de fuego", Description: "Usar pistolas, rifles, escopetas."},
	{ID: "armas_blancas", Name: "Armas blancas", Description: "Cuchillos, bates, machetes, combate cuerpo a cuerpo."},
	{ID: "conduccion", Name: "Conducción", Description: "Manejar bajo presión, en caminos difíciles."},
	{ID: "ingenieria_casera", Name: "Ingeniería casera", Description: "Crear trampas, reparar estructuras."},
	{ID: "orientacion", Name: "Orientación", Description: "Leer mapas, brújulas, encontrar el norte."},
	{ID: "sigilo_urbano", Name: "Sigilo urbano", Description: "Saqueo silencioso, escapar en ciudad."},
	{ID: "empatia", Name: "Empatía", Description: "Leer emociones, detectar mentiras."},
	{ID: "explosivos", Name: "Explosivos", Description: "Armar bombas, usar dinamita o cocteles molotov."},
	{ID: "primeros_auxilios", Name: "Primeros auxilios", Description: "Detener hemorragias, vendajes rápidos."},
	{ID: "cultura_general", Name: "Cultura general", Description: "Historia, referencias útiles, conocimiento civil."},
	{ID: "intuicion", Name: "Intuición", Description: "Sentir que algo está mal, actuar sin pruebas."},
}

var specialSkills = []SkillDefinition{
	{ID: "combate_cuerpo", Name: "Combate cuerpo a cuerpo",
		Description: "Habilidad para luchar con armas cuerpo a cuerpo o a mano limpia"},
	{ID: "armas_fuego", Name: "Armas de fuego", Description: "Precisión y manejo de pistolas, rifles y escopetas"},
	{ID: "sigilo", Name: "Sigilo", Description: "Capacidad para moverse sin ser detectado"},
	{ID: "primeros_auxilios", Name: "Primeros auxilios", Description: "Tratamiento de heridas y enfermedades"},
	{ID: "supervivencia", Name: "Supervivencia", Description: "Encontrar comida, agua y refugio en entornos hostiles"},
	{ID: "mecanica", Name: "Mecánica", Description: "Reparación de vehículos y creación de trampas"},
	{ID: "liderazgo", Name: "Liderazgo", Description: "Capacidad para dirigir grupos y mantener la moral alta"},
	{ID: "negociacion", Name: "Negociación", Description: "Persuasión y capacidad para conseguir mejores tratos"},
	{ID: "atletismo", Name: "Atletismo", Description: "Correr, saltar y escalar con eficacia"},
	{ID: "rastreo", Name: "Rastreo", Description: "Seguir huellas y encontrar recursos ocultos"},
	{ID: "electronica", Name: "Electrónica", Description: "Reparar y hackear dispositivos electrónicos"},
	{ID: "cocina", Name: "Cocina", Description: "Preparar comidas nutritivas con recursos limitados"},
	{ID: "medico_campo", Name: "Médico de Campo", Description: "Curar 1 PV diario a un personaje"},
	{ID: "cazador", Name: "Cazador", Description: "Encontrar comida en entornos naturales"},
	{ID: "artesano", Name: "Artesano", Description: "Crear y reparar objetos con materiales básicos"},
	{ID: "explorador", Name: "Explorador", Description: "Encontrar rutas seguras y evitar peligros"},
}

// PersonalSkills returns the point-buy skill catalog.
func PersonalSkills() []SkillDefinition {
	out := make([]SkillDefinition, len(personalSkills))
	copy(out, personalSkills)
	return out
}

// PersonalSkill returns the definition for a personal-skill id.
func PersonalSkill(id string) (SkillDefinition, bool) {
	return findSkill(personalSkills, id)
}

// SpecialSkills returns the special-skill catalog, including the entries only
// reachable through leveling.
func SpecialSkills() []SkillDefinition {
	out := make([]SkillDefinition, len(specialSkills))
	copy(out, specialSkills)
	return out
}

// SpecialSkill returns the definition for a special-skill id.
func SpecialSkill(id string) (SkillDefinition, bool) {
	return findSkill(specialSkills, id)
}

func findSkill(defs []SkillDefinition, id string) (SkillDefinition, bool) {
	for _, def := range defs {
		if def.ID == id {
			return def, true
		}
	}
	return SkillDefinition{}, false
}
